package exceptions

import (
	"fmt"
	"medirisk-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int          `json:"status_code"`
	Success       bool         `json:"success"`
	ClientMessage string       `json:"message"`
	Errors        []FieldError `json:"errors,omitempty"`
	DevMessage    string       `json:"dev_message,omitempty"`
	Locations     []Location   `json:"locations,omitempty"`

	cause error
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

// Unwrap exposes the wrapped error so errors.Is can match causes such as
// context.DeadlineExceeded.
func (e *CustomError) Unwrap() error {
	return e.cause
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

// BuildNewCustomError wraps err into a CustomError. When err is already a
// CustomError the caller location is appended to it instead, so the trace of
// every layer the error passed through is kept.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	if existing, ok := err.(*CustomError); ok {
		existing.Locations = append(existing.Locations, location)
		return existing
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		cause:         err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
