package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRevenueQueryHandler sums the final amounts of delivered orders.
// Only delivered orders count towards revenue; refunded orders already
// left the DELIVERED status and are excluded.
type GetRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueQueryHandler creates a handler for revenue reports.
// Requires a GORM database connection for query execution.
func NewGetRevenueQueryHandler(db *gorm.DB) GetRevenueQueryHandler {
	return GetRevenueQueryHandler{db: db}
}

// Handle executes the revenue query.
// An empty period yields a zero total, not an error.
func (h GetRevenueQueryHandler) Handle(ctx context.Context, query GetRevenueQuery) (RevenueResponse, error) {
	if err := query.Validate(); err != nil {
		return RevenueResponse{}, err
	}

	var row struct {
		TotalRevenue decimal.Decimal
		OrderCount   int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(final_amount), 0) AS total_revenue,
			COUNT(*) AS order_count
		FROM orders
		WHERE status = 'DELIVERED'
		  AND created_at BETWEEN ? AND ?
	`, query.From(), query.To()).Scan(&row).Error
	if err != nil {
		return RevenueResponse{}, err
	}

	return RevenueResponse{
		TotalRevenue: row.TotalRevenue,
		OrderCount:   row.OrderCount,
		From:         query.From(),
		To:           query.To(),
	}, nil
}
