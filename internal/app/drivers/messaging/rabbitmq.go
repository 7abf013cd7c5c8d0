package messaging

import (
	"log"
	"medirisk-service/internal/app/config"
	"strconv"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	port, err := strconv.Atoi(driverConfig.RabbitMQ.Port)
	if err != nil {
		log.Fatalf("Invalid rabbitMQ port %q: %s", driverConfig.RabbitMQ.Port, err.Error())
	}

	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    "/",
	}

	conn, err := amqp091.Dial(uri.String())
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
