package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
)

// EventPublisher fans an order lifecycle event out to downstream consumers.
// Publishing happens after the owning transaction commits; implementations
// must not be able to roll the state change back. A failed publish is
// reported through the returned error and handled as best-effort by callers.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
