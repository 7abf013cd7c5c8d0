package config

type (
	DriverConfig struct {
		Logger   Logger
		Store    Store
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Model    Model
	}

	InternalConfig struct {
		App      App
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                        string
		Port                       string
		PredictPort                string
		Timezone                   string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
	}

	AppRabbitMQ struct {
		Enabled           bool
		PatientEventQueue string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	Store struct {
		Driver     string
		FilePath   string
		ObjectName string
		RedisKey   string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Model struct {
		Driver                  string
		Path                    string
		URL                     string
		RequestTimeoutInSeconds int
	}
)
