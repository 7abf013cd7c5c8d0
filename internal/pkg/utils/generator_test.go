package utils

import (
	"medirisk-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.True(t, strings.HasPrefix(first, constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, first, second)
}

func TestGeneratePatientID(t *testing.T) {
	assert.Equal(t, "P001", GeneratePatientID(1))
	assert.Equal(t, "P042", GeneratePatientID(42))
	assert.Equal(t, "P1000", GeneratePatientID(1000))
}
