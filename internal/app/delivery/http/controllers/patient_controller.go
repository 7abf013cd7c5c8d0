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

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) Home(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, responses.MessageResponse{Message: constvars.HomeMessage})
}

func (ctrl *PatientController) About(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, responses.MessageResponse{Message: constvars.AboutMessage})
}

func (ctrl *PatientController) View(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindAll(ctx)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "Failed to list patients", start, err)
		return
	}

	ctrl.Log.Info("Patients listed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(result)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Debug("Retrieved patient ID from URL",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "Failed to find patient", start, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) Sort(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	request := &requests.SortPatients{
		SortBy: query.Get(constvars.URLQueryParamSortBy),
		Order:  constvars.SortOrderAsc,
	}
	if query.Has(constvars.URLQueryParamOrder) {
		request.Order = query.Get(constvars.URLQueryParamOrder)
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Sort(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "Failed to sort patients", start, err)
		return
	}

	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreatePatient)
	if err := decodeAndValidate(r, request); err != nil {
		ctrl.Log.Error("Invalid create patient request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "request body"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Create(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "Failed to create patient", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_created", requestID,
		zap.String(constvars.LoggingPatientIDKey, result.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusCreated, result)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requestIDFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Delete(ctx, patientID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "Failed to delete patient", start, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "patient_deleted", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(ctrl.Log, w, constvars.StatusOK, result)
}

func (ctrl *PatientController) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
}

func (ctrl *PatientController) handleUsecaseError(w http.ResponseWriter, requestID, message string, start time.Time, err error) {
	ctrl.Log.Error(message,
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
}
