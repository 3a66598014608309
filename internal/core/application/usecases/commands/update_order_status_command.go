package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// UpdateOrderStatusCommand represents a request to transition an order to a
// new lifecycle status. Reason and changed-by are recorded on the history
// entry; a tracking number may accompany the transition to SHIPPED.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.StatusShipped, "packed", "warehouse")
//	if err != nil {
//	    return err
//	}
//	cmd.SetTrackingNumber("TRACK-42")
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, dispatcher)
//	err = handler.Handle(ctx, cmd)
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	newStatus order.Status
	reason    string
	changedBy string

	trackingNumber string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
// Validates that the order id is present and the target status is one of
// the defined values; whether the transition itself is allowed is decided
// by the aggregate.
func NewUpdateOrderStatusCommand(
	orderID string,
	newStatus order.Status,
	reason, changedBy string,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		reason:    reason,
		changedBy: changedBy,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() string { return c.orderID }

// NewStatus returns the target lifecycle status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// Reason returns the free-text reason recorded on the history entry.
func (c UpdateOrderStatusCommand) Reason() string { return c.reason }

// ChangedBy returns the actor recorded on the history entry.
func (c UpdateOrderStatusCommand) ChangedBy() string { return c.changedBy }

// TrackingNumber returns the optional shipment tracking number.
func (c UpdateOrderStatusCommand) TrackingNumber() string { return c.trackingNumber }

// SetTrackingNumber attaches a shipment tracking number to the transition.
// Usually set alongside the transition to SHIPPED.
func (c *UpdateOrderStatusCommand) SetTrackingNumber(trackingNumber string) {
	c.trackingNumber = trackingNumber
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
