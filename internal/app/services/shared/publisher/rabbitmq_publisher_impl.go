package publisher

import (
	"context"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/app/models"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the subset of *amqp091.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel amqpChannel
	Queue   string
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.PatientEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return newRabbitMQPublisher(channel, queue), nil
}

func newRabbitMQPublisher(channel amqpChannel, queue string) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event models.PatientEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Event,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when RabbitMQ is disabled.
func NewNoopPublisher() contracts.PatientEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event models.PatientEvent) error {
	return nil
}
