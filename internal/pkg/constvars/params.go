package constvars

const (
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamSortBy = "sort_by"
	URLQueryParamOrder  = "order"
)

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

const (
	SortFieldHeight = "height"
	SortFieldWeight = "weight"
	SortFieldBMI    = "bmi"
)

var ValidSortFields = []string{SortFieldHeight, SortFieldWeight, SortFieldBMI}

var ValidSortOrders = []string{SortOrderAsc, SortOrderDesc}
