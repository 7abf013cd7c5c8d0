package exceptions

import (
	"errors"
	"medirisk-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func formatValidationError(fieldErr validator.FieldError) (string, string) {
	fieldName := fieldErr.Field()
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return fieldName, customMessage
}

func FormatAllValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldName, message := formatValidationError(fieldErr)
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldName,
			Message: message,
		})
	}
	return fieldErrors
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldName, message := formatValidationError(validationErrors[0])
		return fieldName + " " + message
	}
	return constvars.ErrDevInvalidInput
}
