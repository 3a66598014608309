package queries

import (
	"context"

	"ordersvc/internal/core/ports"
)

// GetOrderByTrackingNumberQueryHandler loads an order projection by its
// shipment tracking number.
type GetOrderByTrackingNumberQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderByTrackingNumberQueryHandler creates a handler for tracking lookups.
func NewGetOrderByTrackingNumberQueryHandler(repo ports.OrderRepository) GetOrderByTrackingNumberQueryHandler {
	return GetOrderByTrackingNumberQueryHandler{repo: repo}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when no order carries the tracking number.
func (h GetOrderByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackingNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.repo.GetByTrackingNumber(ctx, query.TrackingNumber())
	if err != nil {
		return OrderResponse{}, err
	}

	return orderResponseFromAggregate(aggregate), nil
}
