package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingPatientIDKey     = "patient_id"
	LoggingPatientCountKey  = "patient_count"
	LoggingSortByKey        = "sort_by"
	LoggingSortOrderKey     = "order"
	LoggingStoreDriverKey   = "store_driver"
	LoggingStoreLocationKey = "store_location"
	LoggingModelDriverKey   = "model_driver"
	LoggingPredictionKey    = "predicted_category"
	LoggingEventKey         = "event"
	LoggingQueueNameKey     = "queue_name"
)
