package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits domain events to RabbitMQ. Publishing is best effort:
// errors are logged and returned so callers can ignore them without
// interrupting the request flow. A Publisher with an empty URL is a no-op,
// which keeps the broker optional in small deployments.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.url != ""
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, QueueBookingCreated, event)
}

func (p *Publisher) PublishBookingCanceled(ctx context.Context, event BookingCanceledEvent) error {
	return p.publish(ctx, QueueBookingCanceled, event)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		slog.Warn("rabbitmq dial failed", "queue", queueName, "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Warn("rabbitmq channel open failed", "queue", queueName, "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		slog.Warn("rabbitmq queue declare failed", "queue", queueName, "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		slog.Warn("rabbitmq event marshal failed", "queue", queueName, "error", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		slog.Warn("rabbitmq publish failed", "queue", queueName, "error", err)
		return err
	}

	return nil
}
