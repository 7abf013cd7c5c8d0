package utils

import (
	"errors"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildSuccessResponse writes data as the JSON body. The patient and
// prediction endpoints keep their payload shapes unwrapped, so no envelope is
// added around data. Data that cannot be encoded turns into a 500 error body.
func BuildSuccessResponse(log *zap.Logger, w http.ResponseWriter, code int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		BuildErrorResponse(log, w, exceptions.ErrCannotMarshalJSON(err))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	w.Write(append(body, '\n'))
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	if customErr != nil {
		response.Errors = customErr.Errors
		if GetEnvString("APP_ENV", constvars.AppEnvDevelopment) != constvars.AppEnvProduction {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	}
	json.NewEncoder(w).Encode(response)
}
