package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
)

// EventLog is the durable per-order event trail. Unlike the publisher's
// fire-and-forget channels, appended events can be read back, bounded by
// the retention window of the backing store.
type EventLog interface {
	// Append records the event under its order's trail.
	Append(ctx context.Context, event order.Event) error

	// History returns the recorded events for an order in append order.
	// Events whose retention expired are silently absent. An order with no
	// recorded events yields an empty slice, not an error.
	History(ctx context.Context, orderID string) ([]order.Event, error)
}
