package queries

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/ports"
)

// GetOrderEventsQueryHandler reads an order's event history from the
// durable event log.
type GetOrderEventsQueryHandler struct {
	eventLog ports.EventLog
}

// NewGetOrderEventsQueryHandler creates a handler for event history lookups.
func NewGetOrderEventsQueryHandler(eventLog ports.EventLog) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{eventLog: eventLog}
}

// Handle executes the query.
// An order without recorded events yields an empty slice, not an error.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]order.Event, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.eventLog.History(ctx, query.OrderID())
}
