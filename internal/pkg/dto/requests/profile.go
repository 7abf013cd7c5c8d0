package requests

type PatientProfile struct {
	Name        string            `json:"name" validate:"required,max=50"`
	Age         int               `json:"age" validate:"required,gt=0,lt=120"`
	Weight      float64           `json:"weight" validate:"required,gt=0"`
	LinkedinURL string            `json:"linkedin_url" validate:"required,url"`
	Married     *bool             `json:"married" validate:"required"`
	Allergies   []string          `json:"allergies,omitempty" validate:"omitempty,dive,required"`
	Contact     map[string]string `json:"contact" validate:"required,dive,keys,required,endkeys,required"`
}
