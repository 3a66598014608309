package redis

import (
	"context"
	"testing"
	"time"

	"ordersvc/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(orderID, eventID, eventType string) order.Event {
	return order.Event{
		EventID:     eventID,
		EventType:   eventType,
		OrderID:     orderID,
		CustomerID:  "CUST-1",
		OrderStatus: order.StatusPending,
		Timestamp:   time.Now(),
	}
}

func TestEventLog_AppendAndHistory(t *testing.T) {
	_, client := newTestClient(t)
	log := NewEventLog(client)
	ctx := context.Background()

	first := testEvent("ORD-1", "EVT-1", order.EventOrderCreated)
	second := testEvent("ORD-1", "EVT-2", order.EventOrderStatusChanged)

	require.NoError(t, log.Append(ctx, first))
	require.NoError(t, log.Append(ctx, second))

	events, err := log.History(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "EVT-1", events[0].EventID)
	assert.Equal(t, "EVT-2", events[1].EventID)
	assert.Equal(t, order.EventOrderCreated, events[0].EventType)
}

func TestEventLog_History_EmptyForUnknownOrder(t *testing.T) {
	_, client := newTestClient(t)
	log := NewEventLog(client)

	events, err := log.History(context.Background(), "ORD-UNKNOWN")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventLog_Append_SetsRetention(t *testing.T) {
	mr, client := newTestClient(t)
	log := NewEventLog(client)

	event := testEvent("ORD-1", "EVT-1", order.EventOrderCreated)
	require.NoError(t, log.Append(context.Background(), event))

	assert.Equal(t, eventRetention, mr.TTL("order:events:ORD-1:EVT-1"))
	assert.Equal(t, eventRetention, mr.TTL("order:events:list:ORD-1"))
}

func TestEventLog_History_SkipsExpiredEvents(t *testing.T) {
	mr, client := newTestClient(t)
	log := NewEventLog(client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, testEvent("ORD-1", "EVT-1", order.EventOrderCreated)))
	require.NoError(t, log.Append(ctx, testEvent("ORD-1", "EVT-2", order.EventOrderStatusChanged)))

	mr.Del("order:events:ORD-1:EVT-1")

	events, err := log.History(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "EVT-2", events[0].EventID)
}

func TestEventLog_History_EmptyAfterRetentionWindow(t *testing.T) {
	mr, client := newTestClient(t)
	log := NewEventLog(client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, testEvent("ORD-1", "EVT-1", order.EventOrderCreated)))

	mr.FastForward(eventRetention + time.Minute)

	events, err := log.History(ctx, "ORD-1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventLog_IsolatesOrders(t *testing.T) {
	_, client := newTestClient(t)
	log := NewEventLog(client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, testEvent("ORD-1", "EVT-1", order.EventOrderCreated)))
	require.NoError(t, log.Append(ctx, testEvent("ORD-2", "EVT-2", order.EventOrderCreated)))

	events, err := log.History(ctx, "ORD-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "EVT-1", events[0].EventID)
}
