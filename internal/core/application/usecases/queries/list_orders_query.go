package queries

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrPageIsInvalid     = errors.New("page must be at least 1")
	ErrPageSizeIsInvalid = errors.New("page size must be between 1 and 100")
	ErrSortIsInvalid     = errors.New("sort field is not supported")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// sortColumns whitelists the sortable columns; raw user input never reaches
// the ORDER BY clause directly.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"finalAmount": "final_amount",
	"status":      "status",
}

// ListOrdersQuery retrieves a page of order summaries, optionally filtered
// by customer and status. Both filters may be combined; they are conjoined.
//
// Example:
//
//	query, err := NewListOrdersQuery(1, 20)
//	if err != nil {
//	    return err
//	}
//	query.SetCustomerID("CUST-1")
//	query.SetStatus(order.StatusPending)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	customerID string
	status     *order.Status

	sortBy   string
	sortDesc bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paged listing query.
// Page numbering is 1-based; pageSize 0 selects the default of 20.
// The default sort is newest first.
func NewListOrdersQuery(page, pageSize int) (ListOrdersQuery, error) {
	if page < 1 {
		return ListOrdersQuery{}, ErrPageIsInvalid
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return ListOrdersQuery{}, ErrPageSizeIsInvalid
	}

	return ListOrdersQuery{
		page:     page,
		pageSize: pageSize,
		sortBy:   "createdAt",
		sortDesc: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int { return q.pageSize }

// CustomerID returns the customer filter, empty for no filter.
func (q ListOrdersQuery) CustomerID() string { return q.customerID }

// Status returns the status filter, nil for no filter.
func (q ListOrdersQuery) Status() *order.Status { return q.status }

// SortBy returns the sort field name.
func (q ListOrdersQuery) SortBy() string { return q.sortBy }

// SortDesc reports whether sorting is descending.
func (q ListOrdersQuery) SortDesc() bool { return q.sortDesc }

// SetCustomerID restricts the listing to one customer's orders.
func (q *ListOrdersQuery) SetCustomerID(customerID string) {
	q.customerID = customerID
}

// SetStatus restricts the listing to orders in the given status.
func (q *ListOrdersQuery) SetStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = &status
	return nil
}

// SetSort selects the sort field and direction. The field must be one of
// createdAt, updatedAt, finalAmount or status.
func (q *ListOrdersQuery) SetSort(field string, desc bool) error {
	if _, ok := sortColumns[field]; !ok {
		return ErrSortIsInvalid
	}
	q.sortBy = field
	q.sortDesc = desc
	return nil
}

// OrderSummaryResponse is one row of the order listing. Line items and
// history are omitted; use GetOrderQuery for the full projection.
type OrderSummaryResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Status       order.Status    `json:"status"`
	FinalAmount  decimal.Decimal `json:"finalAmount"`
	Currency     string          `json:"currency"`
	ItemCount    int             `json:"itemCount"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ListOrdersResponse carries one page of summaries plus paging metadata.
type ListOrdersResponse struct {
	Orders     []OrderSummaryResponse `json:"orders"`
	TotalCount int64                  `json:"totalCount"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
}
