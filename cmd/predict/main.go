package main

import (
	"context"
	"fmt"
	"medirisk-service/internal/app/config"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/delivery/http/controllers"
	"medirisk-service/internal/app/delivery/http/middlewares"
	"medirisk-service/internal/app/delivery/http/routers"
	"medirisk-service/internal/app/drivers/logger"
	"medirisk-service/internal/app/services/core/predictions"
	"medirisk-service/internal/app/services/shared/classifier"
	"medirisk-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
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
	log.Printf("Prediction API version: %s, tag: %s", Version, Tag)

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

	premiumClassifier, err := newClassifier(driverConfig)
	if err != nil {
		log.Fatalf("Error loading premium classifier: %v", err)
	}
	bootstrap.Logger.Info("Premium classifier loaded",
		zap.String(constvars.LoggingModelDriverKey, driverConfig.Model.Driver),
	)

	predictionUsecase := predictions.NewPredictionUsecase(premiumClassifier, bootstrap.Logger)
	predictionController := controllers.NewPredictionController(bootstrap.Logger, predictionUsecase, internalConfig)
	routers.SetupPredictionRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(bootstrap.Logger, log, internalConfig),
		predictionController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.PredictPort,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Printf("Prediction API listening on %s", internalConfig.App.PredictPort)
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

func newClassifier(driverConfig *config.DriverConfig) (contracts.Classifier, error) {
	model := driverConfig.Model
	switch model.Driver {
	case constvars.ModelDriverTree:
		return classifier.NewTreeClassifierFromFile(model.Path)
	case constvars.ModelDriverRemote:
		timeout := time.Duration(model.RequestTimeoutInSeconds) * time.Second
		return classifier.NewRemoteClassifier(model.URL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown MODEL_DRIVER %q", model.Driver)
	}
}
