package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the aggregate from the command, persists it transactionally and,
// after the commit, dispatches the ORDER_CREATED event and bumps the
// placement counters.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher)
//	cmd, _ := NewCreateOrderCommand("CUST-1", "Jane Doe", items)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher *OrderEventDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a dispatcher
// for post-commit side effects.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher *OrderEventDispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command and returns the new order's id.
// The order is persisted in PENDING status; event publication and counter
// updates happen after the commit and never fail the call.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	newOrder, err := h.buildOrder(cmd)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	h.dispatcher.Dispatch(ctx, order.NewCreatedEvent(newOrder))
	h.dispatcher.RecordOrderPlaced(ctx, newOrder.CustomerID())
	h.dispatcher.RecordStatusChange(ctx, order.StatusPending)

	return newOrder.ID(), nil
}

// buildOrder assembles the aggregate from the command's required and
// optional parts.
func (h *CreateOrderCommandHandler) buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	newOrder, err := order.NewOrder(kernel.NewOrderID(), cmd.CustomerID(), cmd.CustomerName())
	if err != nil {
		return nil, err
	}

	if cmd.Currency() != "" {
		if err = newOrder.SetCurrency(cmd.Currency()); err != nil {
			return nil, err
		}
	}
	newOrder.SetCustomerContact(cmd.CustomerEmail(), cmd.CustomerPhone())
	newOrder.SetAddresses(cmd.ShippingAddress(), cmd.BillingAddress())
	newOrder.SetNotes(cmd.Notes())
	newOrder.SetPayment(cmd.PaymentMethod(), "")
	newOrder.SetEstimatedDeliveryDate(cmd.EstimatedDeliveryDate())

	for _, itemCmd := range cmd.Items() {
		item, itemErr := order.NewItem(itemCmd.ProductID, itemCmd.ProductName, itemCmd.UnitPrice, itemCmd.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		item.SetProductSKU(itemCmd.ProductSKU)
		item.SetProductImageURL(itemCmd.ProductImageURL)
		item.SetNotes(itemCmd.Notes)
		if !itemCmd.DiscountAmount.IsZero() {
			if itemErr = item.ApplyDiscount(itemCmd.DiscountAmount); itemErr != nil {
				return nil, itemErr
			}
		}
		if !itemCmd.TaxAmount.IsZero() {
			item.ApplyTax(itemCmd.TaxAmount)
		}
		if err = newOrder.AddItem(item); err != nil {
			return nil, err
		}
	}

	newOrder.SetDiscountAmount(cmd.DiscountAmount())
	newOrder.SetTaxAmount(cmd.TaxAmount())
	newOrder.SetShippingAmount(cmd.ShippingAmount())

	return newOrder, nil
}
