package commands

import (
	"context"
	"log/slog"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/ports"
)

// OrderEventDispatcher fans a lifecycle event out to the publisher, the
// durable event log and the stats counters after the owning transaction
// has committed.
//
// Every side effect is best-effort: the state change is already durable, so
// failures are logged and swallowed rather than propagated. A handler that
// committed successfully always reports success to its caller.
type OrderEventDispatcher struct {
	publisher ports.EventPublisher
	eventLog  ports.EventLog
	stats     ports.StatsSink
	logger    *slog.Logger
}

// NewOrderEventDispatcher wires the post-commit side effect ports together.
func NewOrderEventDispatcher(
	publisher ports.EventPublisher,
	eventLog ports.EventLog,
	stats ports.StatsSink,
	logger *slog.Logger,
) *OrderEventDispatcher {
	return &OrderEventDispatcher{
		publisher: publisher,
		eventLog:  eventLog,
		stats:     stats,
		logger:    logger,
	}
}

// Dispatch publishes the event and appends it to the durable event log.
func (d *OrderEventDispatcher) Dispatch(ctx context.Context, event order.Event) {
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Warn("event publish failed",
			"eventId", event.EventID,
			"eventType", event.EventType,
			"orderId", event.OrderID,
			"error", err)
	}

	if err := d.eventLog.Append(ctx, event); err != nil {
		d.logger.Warn("event log append failed",
			"eventId", event.EventID,
			"orderId", event.OrderID,
			"error", err)
	}
}

// RecordOrderPlaced bumps the order placement counters.
func (d *OrderEventDispatcher) RecordOrderPlaced(ctx context.Context, customerID string) {
	if err := d.stats.RecordOrderPlaced(ctx, customerID); err != nil {
		d.logger.Warn("stats update failed", "counter", "orderPlaced", "error", err)
	}
}

// RecordStatusChange bumps the realtime per-status counter.
func (d *OrderEventDispatcher) RecordStatusChange(ctx context.Context, status order.Status) {
	if err := d.stats.RecordStatusChange(ctx, status); err != nil {
		d.logger.Warn("stats update failed", "counter", "statusChange", "status", status, "error", err)
	}
}

// RecordRevenue adds a delivered order's final amount to the revenue counter.
func (d *OrderEventDispatcher) RecordRevenue(ctx context.Context, amount kernel.Money) {
	if err := d.stats.RecordRevenue(ctx, amount); err != nil {
		d.logger.Warn("stats update failed", "counter", "revenue", "error", err)
	}
}
