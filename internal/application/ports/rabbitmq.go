package ports

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"servija-api/internal/infrastructure/mq"
)

type RabbitMQ interface {
	Connect(ctx context.Context, dsn string) error
	Init() error
	PublisherWorker(ctx context.Context)
	Emit(e mq.Event) bool
	GetInputChan() chan mq.Event
	GetConn() *amqp091.Connection
}

// EventPublisher is the part of RabbitMQ the services need.
type EventPublisher interface {
	Emit(e mq.Event) bool
}
