package queries

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery retrieves the recorded event history of one order,
// oldest first.
//
// Example:
//
//	query, err := NewGetOrderEventsQuery("ORD-123")
//	if err != nil {
//	    return err
//	}
type GetOrderEventsQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderEventsQuery creates an event history query for the given order.
func NewGetOrderEventsQuery(orderID string) (GetOrderEventsQuery, error) {
	if orderID == "" {
		return GetOrderEventsQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderEventsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderEventsQueryIsNotConstructed if validation fails.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// OrderID returns the order identifier.
func (q GetOrderEventsQuery) OrderID() string { return q.orderID }
