package order

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// defaultCurrency is used when the creation command does not specify one.
const defaultCurrency = "KRW"

// Order is the aggregate root for a customer order. It owns the line items
// and the append-only status history and is the single consistency boundary
// for all of them.
//
// Order maintains these invariants:
//   - Status changes follow the transition table in status.go
//   - totalAmount is always the sum of the item subtotals
//   - finalAmount is always totalAmount - discount + tax + shipping,
//     recomputed eagerly after any monetary mutation
//   - deliveredAt is set exactly once, on the first transition to DELIVERED
//   - history is append-only and chronologically ordered
type Order struct {
	id string

	customerID    string
	customerName  string
	customerEmail string
	customerPhone string

	status Status

	totalAmount    kernel.Money
	discountAmount kernel.Money
	taxAmount      kernel.Money
	shippingAmount kernel.Money
	finalAmount    kernel.Money
	currency       string

	paymentMethod string
	paymentStatus string

	shippingAddress string
	billingAddress  string
	notes           string

	trackingNumber        string
	estimatedDeliveryDate *time.Time
	deliveredAt           *time.Time

	createdAt time.Time
	updatedAt time.Time

	items         []*Item
	statusHistory []*StatusHistory

	isConstructed bool
}

// NewOrder creates a new order in PENDING status with zero totals and empty
// history. Customer id and name are required.
func NewOrder(id, customerID, customerName string) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}

	now := time.Now()
	return &Order{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		status:        StatusPending,
		currency:      defaultCurrency,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Snapshot carries every persisted field of an order for reconstruction.
type Snapshot struct {
	ID                    string
	CustomerID            string
	CustomerName          string
	CustomerEmail         string
	CustomerPhone         string
	Status                Status
	DiscountAmount        kernel.Money
	TaxAmount             kernel.Money
	ShippingAmount        kernel.Money
	Currency              string
	PaymentMethod         string
	PaymentStatus         string
	ShippingAddress       string
	BillingAddress        string
	Notes                 string
	TrackingNumber        string
	EstimatedDeliveryDate *time.Time
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Items                 []*Item
	StatusHistory         []*StatusHistory
}

// RestoreOrder rebuilds an order aggregate from a persisted snapshot.
// Totals are recomputed from the items rather than trusted from storage.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                    s.ID,
		customerID:            s.CustomerID,
		customerName:          s.CustomerName,
		customerEmail:         s.CustomerEmail,
		customerPhone:         s.CustomerPhone,
		status:                s.Status,
		discountAmount:        s.DiscountAmount,
		taxAmount:             s.TaxAmount,
		shippingAmount:        s.ShippingAmount,
		currency:              s.Currency,
		paymentMethod:         s.PaymentMethod,
		paymentStatus:         s.PaymentStatus,
		shippingAddress:       s.ShippingAddress,
		billingAddress:        s.BillingAddress,
		notes:                 s.Notes,
		trackingNumber:        s.TrackingNumber,
		estimatedDeliveryDate: s.EstimatedDeliveryDate,
		deliveredAt:           s.DeliveredAt,
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
		items:                 s.Items,
		statusHistory:         s.StatusHistory,
		isConstructed:         true,
	}
	o.recalculateTotals()

	return o, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's caller-visible identifier.
func (o *Order) ID() string { return o.id }

// CustomerID returns the customer identifier.
func (o *Order) CustomerID() string { return o.customerID }

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerEmail returns the customer email, empty if unset.
func (o *Order) CustomerEmail() string { return o.customerEmail }

// CustomerPhone returns the customer phone, empty if unset.
func (o *Order) CustomerPhone() string { return o.customerPhone }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// TotalAmount returns the sum of the item subtotals.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// DiscountAmount returns the order-level discount.
func (o *Order) DiscountAmount() kernel.Money { return o.discountAmount }

// TaxAmount returns the order-level tax.
func (o *Order) TaxAmount() kernel.Money { return o.taxAmount }

// ShippingAmount returns the shipping fee.
func (o *Order) ShippingAmount() kernel.Money { return o.shippingAmount }

// FinalAmount returns total - discount + tax + shipping.
func (o *Order) FinalAmount() kernel.Money { return o.finalAmount }

// Currency returns the 3-letter currency code.
func (o *Order) Currency() string { return o.currency }

// PaymentMethod returns the free-text payment method.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// PaymentStatus returns the free-text payment status.
func (o *Order) PaymentStatus() string { return o.paymentStatus }

// ShippingAddress returns the shipping address.
func (o *Order) ShippingAddress() string { return o.shippingAddress }

// BillingAddress returns the billing address.
func (o *Order) BillingAddress() string { return o.billingAddress }

// Notes returns the free-text order notes.
func (o *Order) Notes() string { return o.notes }

// TrackingNumber returns the shipment tracking number, empty until shipping starts.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// EstimatedDeliveryDate returns the estimated delivery timestamp, nil if unset.
func (o *Order) EstimatedDeliveryDate() *time.Time { return o.estimatedDeliveryDate }

// DeliveredAt returns when the order was first delivered, nil before that.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns the owned line items in insertion order.
func (o *Order) Items() []*Item { return o.items }

// StatusHistory returns the status history in chronological order.
func (o *Order) StatusHistory() []*StatusHistory { return o.statusHistory }

// SetCustomerContact sets the optional customer email and phone.
func (o *Order) SetCustomerContact(email, phone string) {
	o.customerEmail = email
	o.customerPhone = phone
	o.touch()
}

// SetCurrency sets the 3-letter currency code.
func (o *Order) SetCurrency(currency string) error {
	if len(currency) != 3 {
		return errs.NewValueIsInvalidError("currency")
	}
	o.currency = currency
	o.touch()
	return nil
}

// SetPayment sets the free-text payment method and status.
func (o *Order) SetPayment(method, status string) {
	o.paymentMethod = method
	o.paymentStatus = status
	o.touch()
}

// SetAddresses sets the shipping and billing addresses.
func (o *Order) SetAddresses(shipping, billing string) {
	o.shippingAddress = shipping
	o.billingAddress = billing
	o.touch()
}

// SetNotes sets the free-text order notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
	o.touch()
}

// SetEstimatedDeliveryDate sets the estimated delivery timestamp.
func (o *Order) SetEstimatedDeliveryDate(t *time.Time) {
	o.estimatedDeliveryDate = t
	o.touch()
}

// SetDiscountAmount sets the order-level discount and recomputes the final amount.
func (o *Order) SetDiscountAmount(discount kernel.Money) {
	o.discountAmount = discount
	o.recalculateTotals()
	o.touch()
}

// SetTaxAmount sets the order-level tax and recomputes the final amount.
func (o *Order) SetTaxAmount(tax kernel.Money) {
	o.taxAmount = tax
	o.recalculateTotals()
	o.touch()
}

// SetShippingAmount sets the shipping fee and recomputes the final amount.
func (o *Order) SetShippingAmount(shipping kernel.Money) {
	o.shippingAmount = shipping
	o.recalculateTotals()
	o.touch()
}

// SetTrackingNumber records the shipment tracking number.
func (o *Order) SetTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	o.trackingNumber = trackingNumber
	o.touch()
	return nil
}

// AddItem appends a line item and recomputes the order totals.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.items = append(o.items, item)
	o.recalculateTotals()
	o.touch()
	return nil
}

// RemoveItem removes a line item and recomputes the order totals.
// The item ceases to exist; it has no lifecycle outside the order.
func (o *Order) RemoveItem(item *Item) {
	for idx, existing := range o.items {
		if existing == item {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recalculateTotals()
			o.touch()
			return
		}
	}
}

// UpdateStatus transitions the order to newStatus.
//
// The transition table is consulted first; a denied pair fails with an
// InvalidTransitionError carrying both endpoints and leaves the order
// untouched. An allowed transition appends exactly one history entry and,
// on the first transition into DELIVERED, records the delivery timestamp.
func (o *Order) UpdateStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(newStatus) {
		return NewInvalidTransitionError(o.status, newStatus)
	}

	now := time.Now()
	from := o.status
	o.status = newStatus
	o.statusHistory = append(o.statusHistory, newStatusHistory(&from, newStatus, now))

	if newStatus == StatusDelivered && o.deliveredAt == nil {
		o.deliveredAt = &now
	}
	o.updatedAt = now

	return nil
}

// LatestHistory returns the most recently appended history entry, nil when
// no transition has happened yet.
func (o *Order) LatestHistory() *StatusHistory {
	if len(o.statusHistory) == 0 {
		return nil
	}
	return o.statusHistory[len(o.statusHistory)-1]
}

// CanBeCancelled reports whether the order is still in a pre-processing
// state (PENDING or CONFIRMED). The cancel command itself is bounded by the
// transition table, which also allows cancelling PROCESSING orders.
func (o *Order) CanBeCancelled() bool {
	return o.status == StatusPending || o.status == StatusConfirmed
}

// IsCompleted reports whether the order reached the end of its normal lifecycle.
func (o *Order) IsCompleted() bool {
	return o.status.IsCompleted()
}

// recalculateTotals recomputes totalAmount from the items and finalAmount
// from the monetary components. Idempotent; callers that mutate state are
// responsible for touch(), so restoring from a snapshot keeps its timestamps.
func (o *Order) recalculateTotals() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total
	o.finalAmount = total.Sub(o.discountAmount).Add(o.taxAmount).Add(o.shippingAmount)
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}
