package http

import (
	"time"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	Currency      string `json:"currency"`
	PaymentMethod string `json:"paymentMethod"`

	ShippingAddress string `json:"shippingAddress"`
	BillingAddress  string `json:"billingAddress"`
	Notes           string `json:"notes"`

	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`

	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`

	Items []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one line item of a creation request.
type CreateOrderItemRequest struct {
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductSKU      string          `json:"productSku"`
	ProductImageURL string          `json:"productImageUrl"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int             `json:"quantity"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Notes           string          `json:"notes"`
}

// UpdateOrderStatusRequest is the body of PUT /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	Reason         string `json:"reason"`
	ChangedBy      string `json:"changedBy"`
	TrackingNumber string `json:"trackingNumber"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelledBy"`
}

// toCommand converts the request into a validated creation command.
func (r CreateOrderRequest) toCommand() (commands.CreateOrderCommand, error) {
	items := make([]commands.CreateOrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		unitPrice, err := kernel.NewMoney(item.UnitPrice)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		discount, err := kernel.NewMoney(item.DiscountAmount)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		tax, err := kernel.NewMoney(item.TaxAmount)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}

		items = append(items, commands.CreateOrderItem{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductSKU:      item.ProductSKU,
			ProductImageURL: item.ProductImageURL,
			UnitPrice:       unitPrice,
			Quantity:        item.Quantity,
			DiscountAmount:  discount,
			TaxAmount:       tax,
			Notes:           item.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(r.CustomerID, r.CustomerName, items)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	discount, err := kernel.NewMoney(r.DiscountAmount)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	tax, err := kernel.NewMoney(r.TaxAmount)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	shipping, err := kernel.NewMoney(r.ShippingAmount)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	cmd.SetContact(r.CustomerEmail, r.CustomerPhone)
	cmd.SetCurrency(r.Currency)
	cmd.SetAddresses(r.ShippingAddress, r.BillingAddress)
	cmd.SetNotes(r.Notes)
	cmd.SetPaymentMethod(r.PaymentMethod)
	cmd.SetAmounts(discount, tax, shipping)
	cmd.SetEstimatedDeliveryDate(r.EstimatedDeliveryDate)

	return cmd, nil
}
