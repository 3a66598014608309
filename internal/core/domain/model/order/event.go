package order

import (
	"fmt"
	"time"

	"ordersvc/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Event types for the order lifecycle. The set is closed: the publisher
// treats anything outside it as non-lifecycle traffic.
const (
	EventOrderCreated       = "ORDER_CREATED"
	EventOrderStatusChanged = "ORDER_STATUS_CHANGED"
	EventOrderCancelled     = "ORDER_CANCELLED"
	EventOrderShipped       = "ORDER_SHIPPED"
	EventOrderDelivered     = "ORDER_DELIVERED"
)

// Event is the message envelope for an order lifecycle change. Events are
// ephemeral: they exist on the wire and in the bounded per-order event log,
// never as first-class stored entities.
type Event struct {
	EventID        string          `json:"eventId"`
	EventType      string          `json:"eventType"`
	OrderID        string          `json:"orderId"`
	CustomerID     string          `json:"customerId"`
	CustomerName   string          `json:"customerName,omitempty"`
	OrderStatus    Status          `json:"orderStatus"`
	PreviousStatus Status          `json:"previousStatus,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Currency       string          `json:"currency,omitempty"`
	Reason         string          `json:"reason,omitempty"`
	ChangedBy      string          `json:"changedBy,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// newEvent stamps a fresh event id and capture-time timestamp.
// Construction has no side effects beyond generating the id.
func newEvent(eventType, orderID string) Event {
	return Event{
		EventID:   kernel.NewEventID(),
		EventType: eventType,
		OrderID:   orderID,
		Timestamp: time.Now(),
	}
}

// NewCreatedEvent builds an ORDER_CREATED event carrying the order's final
// amount and currency.
func NewCreatedEvent(o *Order) Event {
	e := newEvent(EventOrderCreated, o.ID())
	e.CustomerID = o.CustomerID()
	e.CustomerName = o.CustomerName()
	e.OrderStatus = StatusPending
	e.TotalAmount = o.FinalAmount().Amount()
	e.Currency = o.Currency()
	return e
}

// NewStatusChangedEvent builds the generic ORDER_STATUS_CHANGED event, used
// for any transition without a dedicated event type.
func NewStatusChangedEvent(o *Order, previous Status, reason, changedBy string) Event {
	e := newEvent(EventOrderStatusChanged, o.ID())
	e.CustomerID = o.CustomerID()
	e.PreviousStatus = previous
	e.OrderStatus = o.Status()
	e.Reason = reason
	e.ChangedBy = changedBy
	return e
}

// NewCancelledEvent builds the dedicated ORDER_CANCELLED event, emitted
// after the status-change event for the same cancellation.
func NewCancelledEvent(o *Order, reason, cancelledBy string) Event {
	e := newEvent(EventOrderCancelled, o.ID())
	e.CustomerID = o.CustomerID()
	e.OrderStatus = StatusCancelled
	e.Reason = reason
	e.ChangedBy = cancelledBy
	return e
}

// NewShippedEvent builds an ORDER_SHIPPED event carrying the tracking number
// in the reason field. Replaces the generic event for transitions to SHIPPED.
func NewShippedEvent(o *Order) Event {
	e := newEvent(EventOrderShipped, o.ID())
	e.CustomerID = o.CustomerID()
	e.OrderStatus = StatusShipped
	e.Reason = fmt.Sprintf("shipment started - tracking number: %s", o.TrackingNumber())
	return e
}

// NewDeliveredEvent builds an ORDER_DELIVERED event. Replaces the generic
// event for transitions to DELIVERED and carries the final amount so that
// revenue consumers do not need a store round trip.
func NewDeliveredEvent(o *Order) Event {
	e := newEvent(EventOrderDelivered, o.ID())
	e.CustomerID = o.CustomerID()
	e.OrderStatus = StatusDelivered
	e.TotalAmount = o.FinalAmount().Amount()
	e.Currency = o.Currency()
	e.Reason = "delivered"
	return e
}

// IsLifecycle reports whether the event type belongs to the closed set of
// order lifecycle events.
func (e Event) IsLifecycle() bool {
	switch e.EventType {
	case EventOrderCreated, EventOrderStatusChanged, EventOrderCancelled,
		EventOrderShipped, EventOrderDelivered:
		return true
	}
	return false
}
