package utils

import (
	"fmt"
	"medirisk-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GeneratePatientID(sequence int) string {
	return fmt.Sprintf(constvars.PatientIDFormat, sequence)
}
