package queries

import (
	"context"

	"ordersvc/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatusStatisticsQueryHandler counts orders per lifecycle status.
// Also feeds the periodic counter refresh job.
type GetStatusStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusStatisticsQueryHandler creates a handler for status statistics.
// Requires a GORM database connection for query execution.
func NewGetStatusStatisticsQueryHandler(db *gorm.DB) GetStatusStatisticsQueryHandler {
	return GetStatusStatisticsQueryHandler{db: db}
}

// Handle executes the statistics query.
// Statuses without orders are present with a zero count.
func (h GetStatusStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatusStatisticsQuery,
) (StatusStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatusStatisticsResponse{}, err
	}

	counts := make(map[order.Status]int64, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		counts[status] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return StatusStatisticsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return StatusStatisticsResponse{}, err
		}
		counts[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return StatusStatisticsResponse{}, err
	}

	return StatusStatisticsResponse{Counts: counts}, nil
}
