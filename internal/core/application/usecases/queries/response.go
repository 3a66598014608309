// Package queries contains read-only operations in the CQRS architecture.
// Aggregate reads go through the repository; list and aggregate statistics
// queries go straight to the database with raw SQL, bypassing the domain
// model for efficiency.
package queries

import (
	"time"

	"ordersvc/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the full read-side projection of one order, including
// its line items and status history.
type OrderResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	Status order.Status `json:"status"`

	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`
	Currency       string          `json:"currency"`

	PaymentMethod string `json:"paymentMethod,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`

	ShippingAddress string `json:"shippingAddress,omitempty"`
	BillingAddress  string `json:"billingAddress,omitempty"`
	Notes           string `json:"notes,omitempty"`

	TrackingNumber        string     `json:"trackingNumber,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	DeliveredAt           *time.Time `json:"deliveredAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items         []OrderItemResponse     `json:"items"`
	StatusHistory []StatusHistoryResponse `json:"statusHistory"`
}

// OrderItemResponse is the read-side projection of one line item.
type OrderItemResponse struct {
	ID              uint64          `json:"id"`
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductSKU      string          `json:"productSku,omitempty"`
	ProductImageURL string          `json:"productImageUrl,omitempty"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int             `json:"quantity"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	Notes           string          `json:"notes,omitempty"`
}

// StatusHistoryResponse is the read-side projection of one history entry.
type StatusHistoryResponse struct {
	ID         uint64        `json:"id"`
	FromStatus *order.Status `json:"fromStatus,omitempty"`
	ToStatus   order.Status  `json:"toStatus"`
	Reason     string        `json:"reason,omitempty"`
	ChangedBy  string        `json:"changedBy,omitempty"`
	ChangedAt  time.Time     `json:"changedAt"`
}

// orderResponseFromAggregate maps a loaded aggregate into its projection.
func orderResponseFromAggregate(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:              item.ID(),
			ProductID:       item.ProductID(),
			ProductName:     item.ProductName(),
			ProductSKU:      item.ProductSKU(),
			ProductImageURL: item.ProductImageURL(),
			UnitPrice:       item.UnitPrice().Amount(),
			Quantity:        item.Quantity(),
			DiscountAmount:  item.DiscountAmount().Amount(),
			TaxAmount:       item.TaxAmount().Amount(),
			Subtotal:        item.Subtotal().Amount(),
			FinalAmount:     item.FinalAmount().Amount(),
			Notes:           item.Notes(),
		})
	}

	history := make([]StatusHistoryResponse, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, StatusHistoryResponse{
			ID:         entry.ID(),
			FromStatus: entry.FromStatus(),
			ToStatus:   entry.ToStatus(),
			Reason:     entry.Reason(),
			ChangedBy:  entry.ChangedBy(),
			ChangedAt:  entry.ChangedAt(),
		})
	}

	return OrderResponse{
		ID:                    o.ID(),
		CustomerID:            o.CustomerID(),
		CustomerName:          o.CustomerName(),
		CustomerEmail:         o.CustomerEmail(),
		CustomerPhone:         o.CustomerPhone(),
		Status:                o.Status(),
		TotalAmount:           o.TotalAmount().Amount(),
		DiscountAmount:        o.DiscountAmount().Amount(),
		TaxAmount:             o.TaxAmount().Amount(),
		ShippingAmount:        o.ShippingAmount().Amount(),
		FinalAmount:           o.FinalAmount().Amount(),
		Currency:              o.Currency(),
		PaymentMethod:         o.PaymentMethod(),
		PaymentStatus:         o.PaymentStatus(),
		ShippingAddress:       o.ShippingAddress(),
		BillingAddress:        o.BillingAddress(),
		Notes:                 o.Notes(),
		TrackingNumber:        o.TrackingNumber(),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate(),
		DeliveredAt:           o.DeliveredAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		Items:                 items,
		StatusHistory:         history,
	}
}
