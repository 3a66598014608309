// Package noop provides a no-op event publisher, used when neither Redis
// nor Kafka is configured.
package noop

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
)

// Publisher is a no-op EventPublisher.
type Publisher struct{}

func (Publisher) Publish(_ context.Context, _ order.Event) error { return nil }
