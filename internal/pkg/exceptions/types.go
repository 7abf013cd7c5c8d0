package exceptions

import (
	"fmt"
	"medirisk-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnprocessableEntity, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customErr.Errors = FormatAllValidationErrors(err)
		return customErr
	}
	ErrInvalidFieldType = func(err error, field, expected string) *CustomError {
		clientMessage := fmt.Sprintf(constvars.ErrClientInvalidFieldType, field, expected)
		customErr := BuildNewCustomError(err, constvars.StatusUnprocessableEntity, clientMessage, fmt.Sprintf(constvars.ErrDevInvalidFieldType, field, expected))
		customErr.Errors = []FieldError{{Field: field, Message: fmt.Sprintf("must be a valid %s", expected)}}
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrRequestBodyTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrClientCannotProcessRequest, constvars.ErrDevRequestBodyTooLarge)
	}

	// Patients
	ErrPatientNotFound = func(err error, patientID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevPatientNotExists, patientID))
	}
	ErrInvalidSortField = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidSortField, constvars.ValidSortFields), fmt.Sprintf(constvars.ErrDevInvalidQueryParam, constvars.URLQueryParamSortBy))
	}
	ErrInvalidSortOrder = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidSortOrder, fmt.Sprintf(constvars.ErrDevInvalidQueryParam, constvars.URLQueryParamOrder))
	}

	// Record store
	ErrStoreReadDocument = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreReadDocument, driver))
	}
	ErrStoreWriteDocument = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreWriteDocument, driver))
	}
	ErrStoreDecodeDocument = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreDecodeDocument, driver))
	}

	// Classifier
	ErrClassifierLoadModel = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientPredictionUnavailable, fmt.Sprintf(constvars.ErrDevClassifierLoadModel, source))
	}
	ErrClassifierInvalidModel = func(err error, reason string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientPredictionUnavailable, fmt.Sprintf(constvars.ErrDevClassifierInvalidModel, reason))
	}
	ErrClassifierPredict = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientPredictionUnavailable, constvars.ErrDevClassifierPredict)
	}
	ErrClassifierRemoteStatus = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPredictionUnavailable, fmt.Sprintf(constvars.ErrDevClassifierRemoteStatus, statusCode))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPredictionUnavailable, constvars.ErrDevSendHTTPRequest)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
