package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles lifecycle transitions for orders.
// Loads the aggregate under a row lock, applies the transition through the
// state machine, persists the result and dispatches the matching event after
// the commit.
//
// Transitions to SHIPPED and DELIVERED emit their dedicated event types
// instead of the generic status-changed event; a delivery additionally
// feeds the revenue counter.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher *OrderEventDispatcher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher *OrderEventDispatcher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the status update command.
// A transition denied by the state machine fails with an
// order.InvalidTransitionError and leaves the order untouched.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()

	if cmd.TrackingNumber() != "" {
		if err = aggregate.SetTrackingNumber(cmd.TrackingNumber()); err != nil {
			return err
		}
	}

	if err = aggregate.UpdateStatus(cmd.NewStatus()); err != nil {
		return err
	}
	aggregate.LatestHistory().SetAudit(cmd.Reason(), cmd.ChangedBy())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatchAfterCommit(ctx, aggregate, previous, cmd)
	return nil
}

// dispatchAfterCommit emits the event matching the transition and bumps the
// counters. All of it is best-effort; the transition is already durable.
func (h *UpdateOrderStatusCommandHandler) dispatchAfterCommit(
	ctx context.Context,
	aggregate *order.Order,
	previous order.Status,
	cmd UpdateOrderStatusCommand,
) {
	var event order.Event
	switch cmd.NewStatus() {
	case order.StatusShipped:
		event = order.NewShippedEvent(aggregate)
	case order.StatusDelivered:
		event = order.NewDeliveredEvent(aggregate)
	default:
		event = order.NewStatusChangedEvent(aggregate, previous, cmd.Reason(), cmd.ChangedBy())
	}

	h.dispatcher.Dispatch(ctx, event)
	h.dispatcher.RecordStatusChange(ctx, cmd.NewStatus())

	if cmd.NewStatus() == order.StatusDelivered {
		h.dispatcher.RecordRevenue(ctx, aggregate.FinalAmount())
	}
}
