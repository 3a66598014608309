package noop

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
)

// StatsSink is a no-op StatsSink.
type StatsSink struct{}

func (StatsSink) RecordOrderPlaced(_ context.Context, _ string) error { return nil }

func (StatsSink) RecordStatusChange(_ context.Context, _ order.Status) error { return nil }

func (StatsSink) RecordRevenue(_ context.Context, _ kernel.Money) error { return nil }

func (StatsSink) RefreshStatusCounts(_ context.Context, _ map[order.Status]int64) error { return nil }
