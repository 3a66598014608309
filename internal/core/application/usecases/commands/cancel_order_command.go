package commands

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)

	// ErrOrderCannotBeCancelled is returned when the order's current status
	// has no transition to CANCELLED.
	ErrOrderCannotBeCancelled = errors.New("order cannot be cancelled in its current status")
)

// CancelOrderCommand represents a request to cancel an order.
// Cancellation is an ordinary transition to CANCELLED bounded by the state
// machine, so orders in PENDING, CONFIRMED and PROCESSING can be cancelled.
//
// Example:
//
//	cmd, err := NewCancelOrderCommand(orderID, "customer request", "CUST-1")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCancelOrderCommandHandler(uowFactory, dispatcher)
//	err = handler.Handle(ctx, cmd)
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	reason      string
	cancelledBy string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates that the order id is present.
func NewCancelOrderCommand(orderID, reason, cancelledBy string) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		reason:      reason,
		cancelledBy: cancelledBy,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() string { return c.orderID }

// Reason returns the free-text cancellation reason.
func (c CancelOrderCommand) Reason() string { return c.reason }

// CancelledBy returns the actor requesting the cancellation.
func (c CancelOrderCommand) CancelledBy() string { return c.cancelledBy }

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
