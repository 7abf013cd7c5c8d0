package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDRSK_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Record store drivers
const (
	StoreDriverFile  = "file"
	StoreDriverMinio = "minio"
	StoreDriverRedis = "redis"
)

// Classifier drivers
const (
	ModelDriverTree   = "tree"
	ModelDriverRemote = "remote"
)

const (
	PatientIDPrefix = "P"
	PatientIDFormat = PatientIDPrefix + "%03d"
)

const (
	PatientEventCreated = "patient.created"
	PatientEventDeleted = "patient.deleted"
)
