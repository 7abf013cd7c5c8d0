package predictions

import (
	"context"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/dto/requests"
	"medirisk-service/internal/pkg/dto/responses"
	"medirisk-service/internal/pkg/exceptions"
	"medirisk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type predictionUsecase struct {
	Classifier contracts.Classifier
	Log        *zap.Logger
}

func NewPredictionUsecase(classifier contracts.Classifier, logger *zap.Logger) contracts.PredictionUsecase {
	return &predictionUsecase{
		Classifier: classifier,
		Log:        logger,
	}
}

func (uc *predictionUsecase) PredictPremium(ctx context.Context, request *requests.PredictPremium) (*responses.PredictPremium, error) {
	requestID := utils.RequestIDFromContext(ctx)

	features := models.NewInsuranceApplicant(request).Features()
	uc.Log.Debug("predictionUsecase.PredictPremium derived features",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any("features", features),
	)

	category, err := uc.Classifier.Predict(ctx, features)
	if err != nil {
		uc.Log.Error("predictionUsecase.PredictPremium error calling classifier",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrClassifierPredict(err)
	}

	uc.Log.Info("predictionUsecase.PredictPremium succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPredictionKey, category),
	)
	return &responses.PredictPremium{PredictedCategory: category}, nil
}
