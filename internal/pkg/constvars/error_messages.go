package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"lt":         "must be less than %s",
	"lte":        "must be less than or equal to %s",
	"url":        "must be a valid URL",
	"dive":       "is invalid",
	"gender":     "must be one of [male, female, other]",
	"occupation": "must be one of [retired, freelancer, student, government_job, business_owner, unemployed, private_job]",
	"finite_bmi": "is too small to compute a BMI",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientInvalidSortField              = "Invalid field. Choose from %v"
	ErrClientInvalidSortOrder              = "Invalid order"
	ErrClientPredictionUnavailable         = "prediction service is unavailable"
	ErrClientInvalidFieldType              = "%s must be a valid %s"
)

// Error messages for developers
const (
	ErrDevInvalidInput        = "invalid input"
	ErrDevCannotParseJSON     = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON   = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed    = "validation failed"
	ErrDevServerProcess       = "server failed to process the request"
	ErrDevDeadlineExceeded    = "server deadline exceeded"
	ErrDevPatientNotExists    = "patient %s not exists in the record store"
	ErrDevInvalidQueryParam   = "invalid value for query parameter %s"
	ErrDevCreateHTTPRequest   = "failed to create HTTP request"
	ErrDevSendHTTPRequest     = "failed to send HTTP request"
	ErrDevMissingRequestID    = "request id missing from context"
	ErrDevRequestBodyTooLarge = "request body exceeds the configured limit"
	ErrDevInvalidFieldType    = "field %s has the wrong JSON type, expected %s"

	// Record store messages
	ErrDevStoreReadDocument   = "failed to read record document from %s store"
	ErrDevStoreWriteDocument  = "failed to write record document into %s store"
	ErrDevStoreDecodeDocument = "failed to decode record document from %s store"

	// Classifier messages
	ErrDevClassifierLoadModel    = "failed to load classifier model from %s"
	ErrDevClassifierInvalidModel = "classifier model is invalid: %s"
	ErrDevClassifierPredict      = "classifier failed to produce a prediction"
	ErrDevClassifierRemoteStatus = "remote classifier responded with status %d"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue '%s'"
)
