package patients

import (
	"context"
	"fmt"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/dto/requests"
	"medirisk-service/internal/pkg/dto/responses"
	"medirisk-service/internal/pkg/exceptions"
	"medirisk-service/internal/pkg/utils"
	"slices"
	"sort"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	EventPublisher    contracts.PatientEventPublisher
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.PatientEventPublisher,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		EventPublisher:    eventPublisher,
		Log:               logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context) (map[string]responses.Patient, error) {
	records, err := uc.PatientRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	response := make(map[string]responses.Patient, len(records))
	for patientID, patient := range records {
		response[patientID] = patient.ConvertIntoResponse(patientID)
	}
	return response, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := patient.ConvertIntoResponse(patientID)
	return &response, nil
}

func (uc *patientUsecase) Sort(ctx context.Context, request *requests.SortPatients) ([]responses.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if !slices.Contains(constvars.ValidSortFields, request.SortBy) {
		return nil, exceptions.ErrInvalidSortField(nil)
	}
	order := request.Order
	if !slices.Contains(constvars.ValidSortOrders, order) {
		return nil, exceptions.ErrInvalidSortOrder(nil)
	}

	records, err := uc.PatientRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	patientIDs := make([]string, 0, len(records))
	for patientID := range records {
		patientIDs = append(patientIDs, patientID)
	}
	sort.Strings(patientIDs)

	descending := order == constvars.SortOrderDesc
	sort.SliceStable(patientIDs, func(i, j int) bool {
		left := records[patientIDs[i]].SortValue(request.SortBy)
		right := records[patientIDs[j]].SortValue(request.SortBy)
		if descending {
			return left > right
		}
		return left < right
	})

	response := make([]responses.Patient, 0, len(patientIDs))
	for _, patientID := range patientIDs {
		response = append(response, records[patientID].ConvertIntoResponse(patientID))
	}

	uc.Log.Info("patientUsecase.Sort succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSortByKey, request.SortBy),
		zap.String(constvars.LoggingSortOrderKey, order),
		zap.Int(constvars.LoggingPatientCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error) {
	requestID := utils.RequestIDFromContext(ctx)

	patient := models.Patient{
		Name:   request.Name,
		City:   request.City,
		Gender: utils.NormalizeGender(request.Gender),
		Age:    request.Age,
		Height: request.Height,
		Weight: request.Weight,
	}

	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error storing patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.PatientEventCreated, patientID)

	return &responses.CreatePatient{
		Message: constvars.CreatePatientSuccessMessage,
		ID:      patientID,
	}, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID string) (*responses.DeletePatient, error) {
	requestID := utils.RequestIDFromContext(ctx)

	patient, err := uc.PatientRepository.Delete(ctx, patientID)
	if err != nil {
		uc.Log.Warn("patientUsecase.Delete failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.PatientEventDeleted, patientID)

	return &responses.DeletePatient{
		Message:     fmt.Sprintf(constvars.DeletePatientSuccessMessage, patientID),
		DeletedData: patient.ConvertIntoResponse(patientID),
	}, nil
}

// publish runs after the mutation is persisted, so a failure is only logged.
func (uc *patientUsecase) publish(ctx context.Context, event, patientID string) {
	err := uc.EventPublisher.Publish(ctx, models.PatientEvent{
		Event:      event,
		PatientID:  patientID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("patientUsecase.publish error publishing patient event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}
