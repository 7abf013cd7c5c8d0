package main

import (
	"context"
	"fmt"
	"medirisk-service/internal/app/config"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/delivery/http/controllers"
	"medirisk-service/internal/app/delivery/http/middlewares"
	"medirisk-service/internal/app/delivery/http/routers"
	"medirisk-service/internal/app/drivers/database"
	"medirisk-service/internal/app/drivers/logger"
	"medirisk-service/internal/app/drivers/messaging"
	minioDriver "medirisk-service/internal/app/drivers/storage"
	"medirisk-service/internal/app/services/core/patients"
	"medirisk-service/internal/app/services/shared/publisher"
	"medirisk-service/internal/app/services/shared/storage"
	"medirisk-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	log.Printf("Patient API version: %s, tag: %s", Version, Tag)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	switch driverConfig.Store.Driver {
	case constvars.StoreDriverRedis:
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	case constvars.StoreDriverMinio:
		bootstrap.Minio = minioDriver.NewMinio(driverConfig)
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap, log)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Printf("Patient API listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Errorf("Error closing bootstrap resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, log *logrus.Logger) error {
	// Record store
	documentStorage, err := newDocumentStorage(bootstrap)
	if err != nil {
		return err
	}
	log.Printf("Using %s record store at %s", documentStorage.Driver(), documentStorage.Location())

	// Patient events
	eventPublisher := publisher.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		rabbitMQPublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.PatientEventQueue)
		if err != nil {
			return err
		}
		eventPublisher = rabbitMQPublisher
		bootstrap.Logger.Info("Publishing patient events",
			zap.String(constvars.LoggingQueueNameKey, bootstrap.InternalConfig.RabbitMQ.PatientEventQueue),
		)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, log, bootstrap.InternalConfig)

	// Patient
	patientRepository := patients.NewPatientRepository(documentStorage, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, eventPublisher, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	routers.SetupPatientRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController)
	return nil
}

func newDocumentStorage(bootstrap *config.Bootstrap) (contracts.DocumentStorage, error) {
	store := bootstrap.DriverConfig.Store
	switch store.Driver {
	case constvars.StoreDriverFile:
		return storage.NewFileStorage(store.FilePath), nil
	case constvars.StoreDriverRedis:
		return storage.NewRedisStorage(bootstrap.Redis, store.RedisKey), nil
	case constvars.StoreDriverMinio:
		return storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName, store.ObjectName), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", store.Driver)
	}
}
