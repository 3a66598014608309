package queries

import (
	"errors"
	"time"

	"ordersvc/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetRevenueQueryIsNotConstructed = errors.New(
		"GetRevenueQuery must be created via NewGetRevenueQuery constructor",
	)
	ErrPeriodIsInvalid = errors.New("period end must not precede period start")
)

// GetRevenueQuery totals the revenue of delivered orders created inside
// a period. Both bounds are inclusive.
//
// Example:
//
//	query, err := NewGetRevenueQuery(from, to)
//	if err != nil {
//	    return err
//	}
type GetRevenueQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetRevenueQuery creates a revenue query for the [from, to] period.
func NewGetRevenueQuery(from, to time.Time) (GetRevenueQuery, error) {
	if to.Before(from) {
		return GetRevenueQuery{}, ErrPeriodIsInvalid
	}

	return GetRevenueQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRevenueQueryIsNotConstructed if validation fails.
func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

// From returns the period start.
func (q GetRevenueQuery) From() time.Time { return q.from }

// To returns the period end.
func (q GetRevenueQuery) To() time.Time { return q.to }

// RevenueResponse carries the summed revenue of delivered orders in a period.
type RevenueResponse struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	OrderCount   int64           `json:"orderCount"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
}
