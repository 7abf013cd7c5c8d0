package requests

// PredictPremium is the body of POST /predict. Smoker is a pointer so an
// explicit false can be told apart from a missing field.
type PredictPremium struct {
	Age        int     `json:"age" validate:"required,gt=0,lt=120"`
	Weight     float64 `json:"weight" validate:"required,gt=0,lt=120"`
	Height     float64 `json:"height" validate:"required,gt=0,lt=120"`
	City       string  `json:"city" validate:"required"`
	IncomeLPA  float64 `json:"income_lpa" validate:"required,gt=0"`
	Occupation string  `json:"occupation" validate:"required,occupation"`
	Smoker     *bool   `json:"smoker" validate:"required"`
}
