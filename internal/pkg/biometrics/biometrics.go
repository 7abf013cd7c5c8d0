// Package biometrics derives the categorical features used by the patient and
// premium prediction services. Every function is pure; nothing here is stored.
package biometrics

import (
	"math"
	"slices"
)

const (
	VerdictUnderweight = "underweight"
	VerdictNormal      = "normal"
	VerdictOverweight  = "overweight"
	VerdictObese       = "obese"
)

const (
	AgeGroupYoung      = "young"
	AgeGroupAdult      = "adult"
	AgeGroupMiddleAged = "middle_aged"
	AgeGroupSenior     = "senior"
)

const (
	LifestyleRiskLow    = "low"
	LifestyleRiskMedium = "medium"
	LifestyleRiskHigh   = "high"
)

const (
	CityTier1     = "city_tier_1"
	CityTier2     = "city_tier_2"
	CityTier3     = "city_tier_3"
	CityTierOther = "other"
)

var (
	tier1Cities = []string{"Delhi", "Mumbai", "Bangalore", "Kolkata", "Chennai", "Hyderabad", "Pune"}
	tier2Cities = []string{"Ahmedabad", "Jaipur", "Lucknow", "Chandigarh", "Surat", "Nagpur", "Indore"}
	tier3Cities = []string{"Patna", "Ranchi", "Bhubaneswar", "Mysore", "Coimbatore", "Varanasi", "Guwahati"}
)

// BMI returns weight(kg) / height(m)^2. A non-positive height yields 0 so
// records with a missing height sort as zero.
func BMI(weight, height float64) float64 {
	if height <= 0 {
		return 0
	}
	return weight / (height * height)
}

// RoundedBMI is BMI rounded to 2 decimals, as reported for patient records.
func RoundedBMI(weight, height float64) float64 {
	return math.Round(BMI(weight, height)*100) / 100
}

// HasFiniteBMI reports whether weight and height give a BMI that stays finite
// after rounding. A tiny height squares to zero and yields +Inf.
func HasFiniteBMI(weight, height float64) bool {
	rounded := RoundedBMI(weight, height)
	return !math.IsInf(rounded, 0) && !math.IsNaN(rounded)
}

func Verdict(bmi float64) string {
	switch {
	case bmi < 18.5:
		return VerdictUnderweight
	case bmi < 25:
		return VerdictNormal
	case bmi < 30:
		return VerdictOverweight
	default:
		return VerdictObese
	}
}

func AgeGroup(age int) string {
	switch {
	case age < 25:
		return AgeGroupYoung
	case age < 45:
		return AgeGroupAdult
	case age < 60:
		return AgeGroupMiddleAged
	default:
		return AgeGroupSenior
	}
}

// LifestyleRisk checks high before medium and only smokers can reach either,
// so a non-smoker is always low regardless of bmi.
func LifestyleRisk(smoker bool, bmi float64) string {
	if smoker && bmi > 30 {
		return LifestyleRiskHigh
	}
	if smoker && bmi > 27 {
		return LifestyleRiskMedium
	}
	return LifestyleRiskLow
}

// CityTier matches the city name exactly, case included.
func CityTier(city string) string {
	switch {
	case slices.Contains(tier1Cities, city):
		return CityTier1
	case slices.Contains(tier2Cities, city):
		return CityTier2
	case slices.Contains(tier3Cities, city):
		return CityTier3
	default:
		return CityTierOther
	}
}
