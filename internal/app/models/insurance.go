package models

import (
	"medirisk-service/internal/pkg/biometrics"
	"medirisk-service/internal/pkg/dto/requests"
)

type InsuranceApplicant struct {
	Age        int
	Weight     float64
	Height     float64
	City       string
	IncomeLPA  float64
	Occupation string
	Smoker     bool
}

// PremiumFeatures is the single row handed to the premium classifier.
type PremiumFeatures struct {
	BMI           float64 `json:"bmi"`
	AgeGroup      string  `json:"age_group"`
	LifestyleRisk string  `json:"lifestyle_risk"`
	CityTier      string  `json:"city_tier"`
	IncomeLPA     float64 `json:"income_lpa"`
	Occupation    string  `json:"occupation"`
}

func NewInsuranceApplicant(request *requests.PredictPremium) InsuranceApplicant {
	applicant := InsuranceApplicant{
		Age:        request.Age,
		Weight:     request.Weight,
		Height:     request.Height,
		City:       request.City,
		IncomeLPA:  request.IncomeLPA,
		Occupation: request.Occupation,
	}
	if request.Smoker != nil {
		applicant.Smoker = *request.Smoker
	}
	return applicant
}

func (a InsuranceApplicant) BMI() float64 {
	return biometrics.BMI(a.Weight, a.Height)
}

func (a InsuranceApplicant) Features() PremiumFeatures {
	bmi := a.BMI()
	return PremiumFeatures{
		BMI:           bmi,
		AgeGroup:      biometrics.AgeGroup(a.Age),
		LifestyleRisk: biometrics.LifestyleRisk(a.Smoker, bmi),
		CityTier:      biometrics.CityTier(a.City),
		IncomeLPA:     a.IncomeLPA,
		Occupation:    a.Occupation,
	}
}

// Numeric returns the value of a numeric feature by its column name.
func (f PremiumFeatures) Numeric(name string) (float64, bool) {
	switch name {
	case "bmi":
		return f.BMI, true
	case "income_lpa":
		return f.IncomeLPA, true
	default:
		return 0, false
	}
}

// Categorical returns the value of a categorical feature by its column name.
func (f PremiumFeatures) Categorical(name string) (string, bool) {
	switch name {
	case "age_group":
		return f.AgeGroup, true
	case "lifestyle_risk":
		return f.LifestyleRisk, true
	case "city_tier":
		return f.CityTier, true
	case "occupation":
		return f.Occupation, true
	default:
		return "", false
	}
}
