package contracts

import (
	"context"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/dto/requests"
	"medirisk-service/internal/pkg/dto/responses"
)

type PredictionUsecase interface {
	PredictPremium(ctx context.Context, request *requests.PredictPremium) (*responses.PredictPremium, error)
}

// Classifier is a trained premium model loaded once at startup.
type Classifier interface {
	Predict(ctx context.Context, features models.PremiumFeatures) (string, error)
}
