package order

import (
	"errors"
	"fmt"

	"ordersvc/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PROCESSING ──> SHIPPED ──> DELIVERED ──> REFUNDED
//	   │            │              │
//	   └────────────┴──────────────┴──> CANCELLED
//
// CANCELLED and REFUNDED have no outgoing edges. The transition table below
// is the single source of truth; cancellation is an ordinary transition to
// CANCELLED, not a separate rule set.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
	StatusRefunded   Status = "REFUNDED"
)

// allowedTransitions maps each status to the statuses it may move to.
// Any pair not listed here is denied.
var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
		StatusRefunded,
	}
}

// Validate checks that the status is one of the defined values.
// Used when reconstructing orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := allowedTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid order status", string(s)),
		)
	}
	return nil
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsCompleted reports whether the order has reached the end of its normal
// lifecycle: delivered to the customer or cancelled.
func (s Status) IsCompleted() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether the order is still in play, i.e. neither
// cancelled nor refunded.
func (s Status) IsActive() bool {
	return s != StatusCancelled && s != StatusRefunded
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ErrInvalidTransition is the sentinel wrapped by InvalidTransitionError.
var ErrInvalidTransition = errors.New("order status transition is not allowed")

// InvalidTransitionError reports a status change denied by the transition
// table. It carries both endpoints for diagnostics.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
