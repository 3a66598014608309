package commands

import (
	"context"
	"errors"
	"fmt"

	"ordersvc/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation is implemented as a transition to CANCELLED through the same
// state machine as every other transition; a denied transition is reported
// as ErrOrderCannotBeCancelled.
//
// A successful cancellation dispatches two events after the commit: the
// generic status-changed event followed by the dedicated cancelled event.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher *OrderEventDispatcher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher *OrderEventDispatcher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.UpdateStatus(order.StatusCancelled); err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			return fmt.Errorf("%w: %s", ErrOrderCannotBeCancelled, previous)
		}
		return err
	}
	aggregate.LatestHistory().SetAudit(cmd.Reason(), cmd.CancelledBy())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, order.NewStatusChangedEvent(aggregate, previous, cmd.Reason(), cmd.CancelledBy()))
	h.dispatcher.Dispatch(ctx, order.NewCancelledEvent(aggregate, cmd.Reason(), cmd.CancelledBy()))
	h.dispatcher.RecordStatusChange(ctx, order.StatusCancelled)

	return nil
}
