package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/guard"
)

var ErrGetStatusStatisticsQueryIsNotConstructed = errors.New(
	"GetStatusStatisticsQuery must be created via NewGetStatusStatisticsQuery constructor",
)

// GetStatusStatisticsQuery retrieves order counts grouped by lifecycle status.
// Every defined status appears in the result, with zero for absent ones.
//
// Example:
//
//	query := NewGetStatusStatisticsQuery()
//	handler := NewGetStatusStatisticsQueryHandler(db)
//
//	counts, err := handler.Handle(ctx, query)
type GetStatusStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusStatisticsQuery creates a parameterless status statistics query.
func NewGetStatusStatisticsQuery() GetStatusStatisticsQuery {
	return GetStatusStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusStatisticsQueryIsNotConstructed if validation fails.
func (q GetStatusStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusStatisticsQueryIsNotConstructed)
}

// StatusStatisticsResponse maps each lifecycle status to its order count.
type StatusStatisticsResponse struct {
	Counts map[order.Status]int64 `json:"counts"`
}
