package middlewares

import (
	"medirisk-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	Logrus         *logrus.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, logrusLogger *logrus.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Logrus:         logrusLogger,
		InternalConfig: internalConfig,
	}
}
