package queries

import (
	"context"

	"ordersvc/internal/core/ports"
)

// GetOrderQueryHandler loads a single order projection.
// Goes through the repository rather than raw SQL because the response needs
// the full aggregate: items, history and derived amounts.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return orderResponseFromAggregate(aggregate), nil
}
