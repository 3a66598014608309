// Package kafka contains the Kafka-backed event publisher, used instead of
// Redis pub/sub when a broker is configured.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ordersvc/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// Topics names the fan-out targets. They mirror the pub/sub channel set,
// so the composition root derives them from the configured channel names.
type Topics struct {
	Events        string
	Notifications string
	Analytics     string
}

// Publisher fans order events out over Kafka with one writer per topic.
// Messages are keyed by order id so a single order's events stay in one
// partition.
type Publisher struct {
	events        *kafka.Writer
	notifications *kafka.Writer
	analytics     *kafka.Writer
}

// NewPublisher creates a publisher connected to the given broker.
func NewPublisher(broker string, topics Topics) *Publisher {
	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		}
	}

	return &Publisher{
		events:        newWriter(topics.Events),
		notifications: newWriter(topics.Notifications),
		analytics:     newWriter(topics.Analytics),
	}
}

// Publish implements ports.EventPublisher. Every topic send is attempted
// even when an earlier one fails; failures are joined into the returned
// error.
func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", event.EventID, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	}

	var sendErrs []error
	if err = p.events.WriteMessages(ctx, msg); err != nil {
		sendErrs = append(sendErrs, fmt.Errorf("failed to publish to %s: %w", p.events.Topic, err))
	}
	if event.IsLifecycle() {
		if err = p.notifications.WriteMessages(ctx, msg); err != nil {
			sendErrs = append(sendErrs, fmt.Errorf("failed to publish to %s: %w", p.notifications.Topic, err))
		}
	}
	if err = p.analytics.WriteMessages(ctx, msg); err != nil {
		sendErrs = append(sendErrs, fmt.Errorf("failed to publish to %s: %w", p.analytics.Topic, err))
	}

	return errors.Join(sendErrs...)
}

// Close releases the underlying writers.
func (p *Publisher) Close() error {
	return errors.Join(p.events.Close(), p.notifications.Close(), p.analytics.Close())
}
