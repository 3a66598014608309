package redis

import (
	"context"
	"fmt"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"

	goredis "github.com/redis/go-redis/v9"
)

// Counter retention windows. The realtime keys are short-lived dashboard
// gauges; the dated keys are kept long enough for trend reports.
const (
	dailyOrdersTTL    = 90 * 24 * time.Hour
	monthlyOrdersTTL  = 365 * 24 * time.Hour
	customerOrdersTTL = 365 * 24 * time.Hour
	dailyRevenueTTL   = 90 * 24 * time.Hour
	realtimeOrdersTTL = 5 * time.Minute
	realtimeStatusTTL = time.Hour
)

// StatsSink maintains the best-effort operational counters in Redis. A lost
// increment is acceptable; callers log failures and never propagate them.
type StatsSink struct {
	client *goredis.Client
}

// NewStatsSink creates a Redis-backed stats sink.
func NewStatsSink(client *goredis.Client) *StatsSink {
	return &StatsSink{client: client}
}

func realtimeStatusKey(status order.Status) string {
	return fmt.Sprintf("stats:realtime:status:%s", status)
}

// RecordOrderPlaced implements ports.StatsSink. Bumps the daily, monthly and
// per-customer order counters plus the realtime gauge in one pipeline.
func (s *StatsSink) RecordOrderPlaced(ctx context.Context, customerID string) error {
	now := time.Now().UTC()
	dailyKey := fmt.Sprintf("stats:orders:daily:%s", now.Format("2006-01-02"))
	monthlyKey := fmt.Sprintf("stats:orders:monthly:%s", now.Format("2006-01"))
	customerKey := fmt.Sprintf("stats:customer:orders:%s", customerID)

	pipe := s.client.Pipeline()
	pipe.Incr(ctx, dailyKey)
	pipe.Expire(ctx, dailyKey, dailyOrdersTTL)
	pipe.Incr(ctx, monthlyKey)
	pipe.Expire(ctx, monthlyKey, monthlyOrdersTTL)
	pipe.Incr(ctx, customerKey)
	pipe.Expire(ctx, customerKey, customerOrdersTTL)
	pipe.Incr(ctx, "stats:realtime:orders")
	pipe.Expire(ctx, "stats:realtime:orders", realtimeOrdersTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record placed order: %w", err)
	}

	return nil
}

// RecordStatusChange implements ports.StatsSink.
func (s *StatsSink) RecordStatusChange(ctx context.Context, status order.Status) error {
	key := realtimeStatusKey(status)

	pipe := s.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, realtimeStatusTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record status change to %s: %w", status, err)
	}

	return nil
}

// RecordRevenue implements ports.StatsSink. Adds a delivered order's final
// amount to today's revenue counter.
func (s *StatsSink) RecordRevenue(ctx context.Context, amount kernel.Money) error {
	key := fmt.Sprintf("stats:revenue:daily:%s", time.Now().UTC().Format("2006-01-02"))

	pipe := s.client.Pipeline()
	pipe.IncrByFloat(ctx, key, amount.Amount().InexactFloat64())
	pipe.Expire(ctx, key, dailyRevenueTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record revenue: %w", err)
	}

	return nil
}

// RefreshStatusCounts implements ports.StatsSink. Overwrites the per-status
// snapshot counters from the store of record; increments accumulated since
// the previous refresh are discarded.
func (s *StatsSink) RefreshStatusCounts(ctx context.Context, counts map[order.Status]int64) error {
	pipe := s.client.Pipeline()
	for status, count := range counts {
		pipe.Set(ctx, realtimeStatusKey(status), count, realtimeStatusTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to refresh status counts: %w", err)
	}

	return nil
}
