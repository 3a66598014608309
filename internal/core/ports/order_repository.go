package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations load and store the full aggregate, including line items
// and status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate with a row lock held for the
	// duration of the surrounding transaction. Used by commands that mutate
	// the aggregate to serialize concurrent status changes.
	GetForUpdate(ctx context.Context, id string) (*order.Order, error)

	// GetByTrackingNumber retrieves the order carrying the given shipment
	// tracking number. Returns errs.ObjectNotFoundError when none matches.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)
}
