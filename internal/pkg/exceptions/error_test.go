package exceptions

import (
	"context"
	"errors"
	"medirisk-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps Plain Error", func(t *testing.T) {
		cause := errors.New("disk full")
		customErr := ErrStoreWriteDocument(cause, "file")

		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, customErr.ClientMessage)
		assert.Contains(t, customErr.DevMessage, "disk full")
		require.Len(t, customErr.Locations, 1)
		assert.Contains(t, customErr.Locations[0].FunctionName, "TestBuildNewCustomError")
		assert.ErrorIs(t, customErr, cause)
	})

	t.Run("Keeps Existing Custom Error", func(t *testing.T) {
		original := ErrPatientNotFound(nil, "P001")
		wrapped := ErrServerProcess(original)

		assert.Same(t, original, wrapped)
		assert.Equal(t, constvars.StatusNotFound, wrapped.StatusCode)
		assert.Len(t, wrapped.Locations, 2)
	})

	t.Run("Deadline Is Detectable", func(t *testing.T) {
		customErr := ErrClassifierPredict(context.DeadlineExceeded)
		assert.ErrorIs(t, customErr, context.DeadlineExceeded)
	})
}

func TestErrInputValidation(t *testing.T) {
	type input struct {
		Name string `validate:"required,max=5"`
		Age  int    `validate:"gt=0,lt=120"`
	}

	err := validator.New().Struct(input{Name: "toolongname", Age: 130})
	require.Error(t, err)

	customErr := ErrInputValidation(err)
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Equal(t, "Name maximum at 5 characters long", customErr.ClientMessage)
	assert.Equal(t, []FieldError{
		{Field: "Name", Message: "maximum at 5 characters long"},
		{Field: "Age", Message: "must be less than 120"},
	}, customErr.Errors)
}

func TestErrInvalidFieldType(t *testing.T) {
	customErr := ErrInvalidFieldType(errors.New("cannot unmarshal"), "age", "integer")

	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Equal(t, "age must be a valid integer", customErr.ClientMessage)
	assert.Equal(t, []FieldError{{Field: "age", Message: "must be a valid integer"}}, customErr.Errors)
}

func TestErrInvalidSortField(t *testing.T) {
	customErr := ErrInvalidSortField(nil)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "Invalid field. Choose from [height weight bmi]", customErr.ClientMessage)
}
