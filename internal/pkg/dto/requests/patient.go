package requests

type CreatePatient struct {
	Name   string  `json:"name" validate:"required"`
	City   string  `json:"city" validate:"required"`
	Gender string  `json:"gender" validate:"required,gender"`
	Age    int     `json:"age" validate:"required,gt=0,lt=120"`
	Height float64 `json:"height" validate:"required,gt=0"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

type SortPatients struct {
	SortBy string
	Order  string
}
