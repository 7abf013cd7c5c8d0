// Package profiles validates standalone patient profile documents against the
// profile schema: bounded name, age and weight, a LinkedIn URL, marital status,
// optional allergies and a non-empty contact map.
package profiles

import (
	"bytes"
	"errors"
	"medirisk-service/internal/pkg/dto/requests"
	"medirisk-service/internal/pkg/exceptions"
	"medirisk-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

var ErrEmptyDocument = errors.New("profile document is empty")

// Check decodes a JSON profile and validates it. Validation failures come back
// as *exceptions.CustomError carrying every field error.
func Check(data []byte) (*requests.PatientProfile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, exceptions.ErrCannotParseJSON(ErrEmptyDocument)
	}

	profile := new(requests.PatientProfile)
	if err := json.Unmarshal(data, profile); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, exceptions.ErrInvalidFieldType(err, typeErr.Field, utils.JSONTypeName(typeErr.Type))
		}
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if err := utils.ValidateStruct(profile); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return profile, nil
}
