package patients

import (
	"bytes"
	"context"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"
	"medirisk-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// patientRepository keeps every record in one serialized document. Each call
// reads the whole document and each mutation rewrites it, so concurrent
// writers can lose updates; the store is meant for a single low-traffic process.
type patientRepository struct {
	Storage contracts.DocumentStorage
	Log     *zap.Logger
}

func NewPatientRepository(storage contracts.DocumentStorage, logger *zap.Logger) contracts.PatientRepository {
	return &patientRepository{
		Storage: storage,
		Log:     logger,
	}
}

func (repo *patientRepository) Load(ctx context.Context) (models.PatientRecords, error) {
	requestID := utils.RequestIDFromContext(ctx)

	data, found, err := repo.Storage.Read(ctx)
	if err != nil {
		repo.Log.Error("patientRepository.Load error reading document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoreDriverKey, repo.Storage.Driver()),
			zap.Error(err),
		)
		return nil, err
	}

	records := make(models.PatientRecords)
	if !found || len(bytes.TrimSpace(data)) == 0 {
		repo.Log.Debug("patientRepository.Load no document found, starting empty",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoreLocationKey, repo.Storage.Location()),
		)
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		repo.Log.Error("patientRepository.Load error decoding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoreLocationKey, repo.Storage.Location()),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoreDecodeDocument(err, repo.Storage.Driver())
	}
	if records == nil {
		records = make(models.PatientRecords)
	}

	repo.Log.Debug("patientRepository.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(records)),
	)
	return records, nil
}

func (repo *patientRepository) Save(ctx context.Context, records models.PatientRecords) error {
	requestID := utils.RequestIDFromContext(ctx)

	if records == nil {
		records = make(models.PatientRecords)
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := repo.Storage.Write(ctx, data); err != nil {
		repo.Log.Error("patientRepository.Save error writing document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStoreDriverKey, repo.Storage.Driver()),
			zap.Error(err),
		)
		return err
	}

	repo.Log.Debug("patientRepository.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(records)),
	)
	return nil
}

func (repo *patientRepository) Create(ctx context.Context, patient models.Patient) (string, error) {
	records, err := repo.Load(ctx)
	if err != nil {
		return "", err
	}

	patientID := nextPatientID(records)
	records[patientID] = patient

	if err := repo.Save(ctx, records); err != nil {
		return "", err
	}
	return patientID, nil
}

func (repo *patientRepository) Delete(ctx context.Context, patientID string) (*models.Patient, error) {
	records, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	patient, ok := records[patientID]
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	delete(records, patientID)

	if err := repo.Save(ctx, records); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (repo *patientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	records, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	patient, ok := records[patientID]
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return &patient, nil
}

// nextPatientID numbers a new record from the current record count. After a
// deletion that number can already be in use; instead of overwriting the
// record holding it, the number is advanced to the first free one.
func nextPatientID(records models.PatientRecords) string {
	sequence := len(records) + 1
	for {
		patientID := utils.GeneratePatientID(sequence)
		if _, taken := records[patientID]; !taken {
			return patientID
		}
		sequence++
	}
}
