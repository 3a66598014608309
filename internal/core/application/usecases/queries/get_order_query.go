package queries

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetOrderQuery retrieves a single order with its items and status history.
//
// Example:
//
//	query, err := NewGetOrderQuery("ORD-1700000000000-A1B2C3D4")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(repo)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}
