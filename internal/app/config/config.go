package config

import (
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Store: Store{
			Driver:     utils.GetEnvString("STORE_DRIVER", constvars.StoreDriverFile),
			FilePath:   utils.GetEnvString("STORE_FILE_PATH", "patients.json"),
			ObjectName: utils.GetEnvString("STORE_OBJECT_NAME", "patients.json"),
			RedisKey:   utils.GetEnvString("STORE_REDIS_KEY", "medirisk:patients"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medirisk"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Model: Model{
			Driver:                  utils.GetEnvString("MODEL_DRIVER", constvars.ModelDriverTree),
			Path:                    utils.GetEnvString("MODEL_PATH", "model/insurance_premium_tree.json"),
			URL:                     utils.GetEnvString("MODEL_URL", "http://localhost:5000/predict"),
			RequestTimeoutInSeconds: utils.GetEnvInt("MODEL_REQUEST_TIMEOUT_IN_SECONDS", 5),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			PredictPort:                utils.GetEnvString("APP_PREDICT_PORT", ":8001"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:           utils.GetEnvBool("RABBITMQ_ENABLED", false),
			PatientEventQueue: utils.GetEnvString("APP_RABBITMQ_PATIENT_EVENT_QUEUE", "patient_events"),
		},
	}
}
