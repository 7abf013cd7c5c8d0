package responses

// Patient is one record as returned to clients. The id keys the record in
// /view and is not part of the serialized record itself.
type Patient struct {
	ID      string  `json:"-"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Gender  string  `json:"gender"`
	Age     int     `json:"age"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
	BMI     float64 `json:"bmi"`
	Verdict string  `json:"verdict"`
}

type CreatePatient struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type DeletePatient struct {
	Message     string  `json:"message"`
	DeletedData Patient `json:"deleted_data"`
}
