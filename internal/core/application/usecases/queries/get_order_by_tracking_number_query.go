package queries

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var (
	ErrGetOrderByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetOrderByTrackingNumberQuery must be created via NewGetOrderByTrackingNumberQuery constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// GetOrderByTrackingNumberQuery retrieves the order carrying a shipment
// tracking number.
type GetOrderByTrackingNumberQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByTrackingNumberQuery creates a query for one order by its
// tracking number.
func NewGetOrderByTrackingNumberQuery(trackingNumber string) (GetOrderByTrackingNumberQuery, error) {
	if trackingNumber == "" {
		return GetOrderByTrackingNumberQuery{}, ErrTrackingNumberIsRequired
	}

	return GetOrderByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByTrackingNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the requested tracking number.
func (q GetOrderByTrackingNumberQuery) TrackingNumber() string {
	return q.trackingNumber
}
