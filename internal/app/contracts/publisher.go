package contracts

import (
	"context"
	"medirisk-service/internal/app/models"
)

type PatientEventPublisher interface {
	Publish(ctx context.Context, event models.PatientEvent) error
}
