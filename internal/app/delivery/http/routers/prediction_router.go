package routers

import (
	"medirisk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPredictionRoutes(router chi.Router, predictionController *controllers.PredictionController) {
	router.Get("/", predictionController.Home)
	router.Get("/health", predictionController.Health)
	router.Post("/predict", predictionController.Predict)
}
