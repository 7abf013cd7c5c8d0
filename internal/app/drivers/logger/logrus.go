package logger

import (
	"medirisk-service/internal/app/config"
	"medirisk-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the lifecycle logger used by the entrypoints for
// startup and shutdown lines. Request handling logs through zap.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
