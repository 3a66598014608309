package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
)

// StatsSink accumulates best-effort operational counters. Calls are made
// outside transactions; a lost increment is acceptable and callers only log
// failures, never propagate them.
type StatsSink interface {
	// RecordOrderPlaced bumps the daily, monthly and per-customer order
	// counters plus the short-lived realtime gauge.
	RecordOrderPlaced(ctx context.Context, customerID string) error

	// RecordStatusChange bumps the realtime per-status counter.
	RecordStatusChange(ctx context.Context, status order.Status) error

	// RecordRevenue adds a delivered order's final amount to today's
	// revenue counter.
	RecordRevenue(ctx context.Context, amount kernel.Money) error

	// RefreshStatusCounts overwrites the per-status snapshot counters,
	// typically from a periodic job reading the store of record.
	RefreshStatusCounts(ctx context.Context, counts map[order.Status]int64) error
}
