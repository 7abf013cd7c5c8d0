package routers

import (
	"medirisk-service/internal/app/config"
	"medirisk-service/internal/app/delivery/http/controllers"
	"medirisk-service/internal/app/delivery/http/middlewares"
	"medirisk-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupPatientRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
) {
	useCommonMiddlewares(router, internalConfig, middlewares)
	attachPatientRoutes(router, patientController)
}

func SetupPredictionRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	predictionController *controllers.PredictionController,
) {
	useCommonMiddlewares(router, internalConfig, middlewares)
	attachPredictionRoutes(router, predictionController)
}

func useCommonMiddlewares(router *chi.Mux, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	if internalConfig.App.Env != constvars.AppEnvProduction {
		router.Use(middlewares.AccessLog)
	}
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
}
