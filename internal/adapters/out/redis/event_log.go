package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ordersvc/internal/core/domain/model/order"

	goredis "github.com/redis/go-redis/v9"
)

// eventRetention bounds the per-order event trail. Individual events and the
// per-order index list expire together.
const eventRetention = 30 * 24 * time.Hour

// EventLog stores each order's event trail in Redis: one key per event plus
// an index list of event ids per order, both with a 30 day retention window.
// The log is an auxiliary audit trail, not the system of record.
type EventLog struct {
	client *goredis.Client
}

// NewEventLog creates a Redis-backed event log.
func NewEventLog(client *goredis.Client) *EventLog {
	return &EventLog{client: client}
}

func eventKey(orderID, eventID string) string {
	return fmt.Sprintf("order:events:%s:%s", orderID, eventID)
}

func eventListKey(orderID string) string {
	return fmt.Sprintf("order:events:list:%s", orderID)
}

// Append implements ports.EventLog. The event body, the index entry and the
// retention windows are written in one pipeline.
func (l *EventLog) Append(ctx context.Context, event order.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", event.EventID, err)
	}

	pipe := l.client.Pipeline()
	pipe.Set(ctx, eventKey(event.OrderID, event.EventID), payload, eventRetention)
	pipe.RPush(ctx, eventListKey(event.OrderID), event.EventID)
	pipe.Expire(ctx, eventListKey(event.OrderID), eventRetention)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append event %s: %w", event.EventID, err)
	}

	return nil
}

// History implements ports.EventLog. Index entries whose event body expired
// or cannot be decoded are skipped, so the result may be shorter than the
// index list.
func (l *EventLog) History(ctx context.Context, orderID string) ([]order.Event, error) {
	eventIDs, err := l.client.LRange(ctx, eventListKey(orderID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read event index for order %s: %w", orderID, err)
	}

	events := make([]order.Event, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		payload, err := l.client.Get(ctx, eventKey(orderID, eventID)).Bytes()
		if errors.Is(err, goredis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event %s: %w", eventID, err)
		}

		var event order.Event
		if err = json.Unmarshal(payload, &event); err != nil {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}
