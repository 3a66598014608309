package commands

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired   = errors.New("customer id is required")
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrOrderItemsAreRequired  = errors.New("at least one order item is required")
)

// CreateOrderItem carries the line item details of a creation request.
// Monetary values arrive already parsed; validation of the business rules
// (positive price, quantity bounds, discount cap) happens in the domain.
type CreateOrderItem struct {
	ProductID       string
	ProductName     string
	ProductSKU      string
	ProductImageURL string
	UnitPrice       kernel.Money
	Quantity        int
	DiscountAmount  kernel.Money
	TaxAmount       kernel.Money
	Notes           string
}

// CreateOrderCommand represents a request to register a new customer order.
// Customer id, customer name and at least one item are required; contact
// details, addresses, payment info and order-level amounts are optional.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("CUST-1", "Jane Doe", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	cmd.SetAddresses("1 Ship St", "2 Bill Ave")
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   string
	customerName string
	items        []CreateOrderItem

	customerEmail string
	customerPhone string
	currency      string

	shippingAddress string
	billingAddress  string
	notes           string

	paymentMethod string

	discountAmount kernel.Money
	taxAmount      kernel.Money
	shippingAmount kernel.Money

	estimatedDeliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer id and name are present and that the request
// carries at least one item.
func NewCreateOrderCommand(customerID, customerName string, items []CreateOrderItem) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the customer identifier.
func (c CreateOrderCommand) CustomerID() string { return c.customerID }

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []CreateOrderItem { return c.items }

// CustomerEmail returns the optional customer email.
func (c CreateOrderCommand) CustomerEmail() string { return c.customerEmail }

// CustomerPhone returns the optional customer phone.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// Currency returns the optional 3-letter currency code, empty for the default.
func (c CreateOrderCommand) Currency() string { return c.currency }

// ShippingAddress returns the optional shipping address.
func (c CreateOrderCommand) ShippingAddress() string { return c.shippingAddress }

// BillingAddress returns the optional billing address.
func (c CreateOrderCommand) BillingAddress() string { return c.billingAddress }

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// PaymentMethod returns the optional payment method.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// DiscountAmount returns the order-level discount, zero if unset.
func (c CreateOrderCommand) DiscountAmount() kernel.Money { return c.discountAmount }

// TaxAmount returns the order-level tax, zero if unset.
func (c CreateOrderCommand) TaxAmount() kernel.Money { return c.taxAmount }

// ShippingAmount returns the shipping fee, zero if unset.
func (c CreateOrderCommand) ShippingAmount() kernel.Money { return c.shippingAmount }

// EstimatedDeliveryDate returns the optional estimated delivery timestamp.
func (c CreateOrderCommand) EstimatedDeliveryDate() *time.Time { return c.estimatedDeliveryDate }

// SetContact sets the optional customer email and phone.
func (c *CreateOrderCommand) SetContact(email, phone string) {
	c.customerEmail = email
	c.customerPhone = phone
}

// SetCurrency sets the optional currency code. Left empty, the order uses
// its default currency.
func (c *CreateOrderCommand) SetCurrency(currency string) {
	c.currency = currency
}

// SetAddresses sets the optional shipping and billing addresses.
func (c *CreateOrderCommand) SetAddresses(shipping, billing string) {
	c.shippingAddress = shipping
	c.billingAddress = billing
}

// SetNotes sets the optional free-text notes.
func (c *CreateOrderCommand) SetNotes(notes string) {
	c.notes = notes
}

// SetPaymentMethod sets the optional payment method.
func (c *CreateOrderCommand) SetPaymentMethod(method string) {
	c.paymentMethod = method
}

// SetAmounts sets the optional order-level discount, tax and shipping amounts.
func (c *CreateOrderCommand) SetAmounts(discount, tax, shipping kernel.Money) {
	c.discountAmount = discount
	c.taxAmount = tax
	c.shippingAmount = shipping
}

// SetEstimatedDeliveryDate sets the optional estimated delivery timestamp.
func (c *CreateOrderCommand) SetEstimatedDeliveryDate(t *time.Time) {
	c.estimatedDeliveryDate = t
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
