package controllers

import (
	"errors"
	"io"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"
	"medirisk-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// requestIDFromRequest writes an error response and returns false when the
// request id middleware did not run.
func requestIDFromRequest(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID := utils.RequestIDFromContext(r.Context())
	if requestID == "" {
		log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

// decodeAndValidate reads the JSON body into dst and runs the struct
// validation tags on it.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return exceptions.ErrInvalidFieldType(err, field, utils.JSONTypeName(typeErr.Type))
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := utils.ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
