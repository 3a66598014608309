package queries

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of order summaries with raw SQL.
// Bypasses the domain model: listings never need the full aggregate and
// loading items and history per row would be wasteful.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Filters are conjoined; the total count reflects the filters, not the page.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.CustomerID() != "" {
		where += " AND customer_id = ?"
		args = append(args, query.CustomerID())
	}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersResponse{}, err
	}

	direction := "ASC"
	if query.SortDesc() {
		direction = "DESC"
	}
	// sortColumns is a fixed whitelist, so the column name is safe to splice.
	orderBy := sortColumns[query.SortBy()] + " " + direction

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.customer_name,
			o.status,
			o.final_amount,
			o.currency,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			o.created_at,
			o.updated_at
		FROM orders o
		WHERE `+where+`
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return ListOrdersResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0, query.PageSize())
	for rows.Next() {
		var summary OrderSummaryResponse
		var status string
		var finalAmount decimal.Decimal
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&summary.ID,
			&summary.CustomerID,
			&summary.CustomerName,
			&status,
			&finalAmount,
			&summary.Currency,
			&summary.ItemCount,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return ListOrdersResponse{}, err
		}

		summary.Status = order.Status(status)
		summary.FinalAmount = finalAmount
		summary.CreatedAt = createdAt
		summary.UpdatedAt = updatedAt
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersResponse{}, err
	}

	return ListOrdersResponse{
		Orders:     orders,
		TotalCount: total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
	}, nil
}
