package contracts

import (
	"context"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/dto/requests"
	"medirisk-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FindAll(ctx context.Context) (map[string]responses.Patient, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	Sort(ctx context.Context, request *requests.SortPatients) ([]responses.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error)
	Delete(ctx context.Context, patientID string) (*responses.DeletePatient, error)
}

type PatientRepository interface {
	Load(ctx context.Context) (models.PatientRecords, error)
	Save(ctx context.Context, records models.PatientRecords) error
	Create(ctx context.Context, patient models.Patient) (string, error)
	Delete(ctx context.Context, patientID string) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}
