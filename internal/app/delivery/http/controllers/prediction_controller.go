package controllers

import (
	"context"
	"errors"
	"medirisk-service/internal/app/config"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/dto/requests"
	"medirisk-service/internal/pkg/dto/responses"
	"medirisk-service/internal/pkg/exceptions"
	"medirisk-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type PredictionController struct {
	Log               *zap.Logger
	PredictionUsecase contracts.PredictionUsecase
	InternalConfig    *config.InternalConfig
}

func NewPredictionController(logger *zap.Logger, predictionUsecase contracts.PredictionUsecase, internalConfig *config.InternalConfig) *PredictionController {
	return &PredictionController{
		Log:               logger,
		PredictionUsecase: predictionUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *PredictionController) Home(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, responses.MessageResponse{Message: constvars.PredictHomeMessage})
}

func (ctrl *PredictionController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, responses.MessageResponse{Message: constvars.PredictHealthMessage})
}

func (ctrl *PredictionController) Predict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.PredictPremium)
	if err := decodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("Invalid premium prediction request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "request body"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	result, err := ctrl.PredictionUsecase.PredictPremium(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to predict premium category",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "premium_predicted", requestID,
		zap.String(constvars.LoggingPredictionKey, result.PredictedCategory),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}
