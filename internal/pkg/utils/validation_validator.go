package utils

import (
	"medirisk-service/internal/pkg/biometrics"
	"medirisk-service/internal/pkg/dto/requests"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validGenders     = []string{"male", "female", "other"}
	validOccupations = []string{"retired", "freelancer", "student", "government_job", "business_owner", "unemployed", "private_job"}
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("occupation", validateOccupation)
	validate.RegisterStructValidation(validateCreatePatientBMI, requests.CreatePatient{})
	validate.RegisterStructValidation(validatePredictPremiumBMI, requests.PredictPremium{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// NormalizeGender maps the legacy "others" literal onto "other" so both
// spellings are stored the same way.
func NormalizeGender(gender string) string {
	if gender == "others" {
		return "other"
	}
	return gender
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateGender(fl validator.FieldLevel) bool {
	return slices.Contains(validGenders, NormalizeGender(fl.Field().String()))
}

func validateOccupation(fl validator.FieldLevel) bool {
	return slices.Contains(validOccupations, fl.Field().String())
}

func validateCreatePatientBMI(sl validator.StructLevel) {
	request := sl.Current().Interface().(requests.CreatePatient)
	if !biometrics.HasFiniteBMI(request.Weight, request.Height) {
		sl.ReportError(request.Height, "height", "Height", "finite_bmi", "")
	}
}

func validatePredictPremiumBMI(sl validator.StructLevel) {
	request := sl.Current().Interface().(requests.PredictPremium)
	if !biometrics.HasFiniteBMI(request.Weight, request.Height) {
		sl.ReportError(request.Height, "height", "Height", "finite_bmi", "")
	}
}
