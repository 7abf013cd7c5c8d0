package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Bootstrap carries the process-wide handles created once in main. Redis,
// Minio and RabbitMQ stay nil unless the configured drivers need them.
type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	Redis          *redis.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		// Sync on stdout/stderr reports EINVAL on some platforms.
		_ = b.Logger.Sync()
		log.Println("Successfully closing Logger")
	}

	return nil
}
