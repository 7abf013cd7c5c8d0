package models

import (
	"medirisk-service/internal/pkg/biometrics"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/dto/responses"
)

// Patient holds only the base attributes. BMI and verdict are derived on read.
type Patient struct {
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Gender string  `json:"gender"`
	Age    int     `json:"age"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// PatientRecords is the id -> record document persisted by the record store.
type PatientRecords map[string]Patient

func (p Patient) BMI() float64 {
	return biometrics.RoundedBMI(p.Weight, p.Height)
}

func (p Patient) Verdict() string {
	return biometrics.Verdict(p.BMI())
}

// SortValue returns the numeric field a sort query orders by.
func (p Patient) SortValue(field string) float64 {
	switch field {
	case constvars.SortFieldHeight:
		return p.Height
	case constvars.SortFieldWeight:
		return p.Weight
	case constvars.SortFieldBMI:
		return p.BMI()
	default:
		return 0
	}
}

func (p Patient) ConvertIntoResponse(patientID string) responses.Patient {
	return responses.Patient{
		ID:      patientID,
		Name:    p.Name,
		City:    p.City,
		Gender:  p.Gender,
		Age:     p.Age,
		Height:  p.Height,
		Weight:  p.Weight,
		BMI:     p.BMI(),
		Verdict: p.Verdict(),
	}
}
