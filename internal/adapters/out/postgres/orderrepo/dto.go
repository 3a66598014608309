// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and status history are owned rows; deleting the order cascades
// to both.
type OrderDTO struct {
	ID string `gorm:"type:varchar(50);primaryKey"`

	CustomerID    string `gorm:"type:varchar(50);index;not null"`
	CustomerName  string `gorm:"type:varchar(200);not null"`
	CustomerEmail string `gorm:"type:varchar(200)"`
	CustomerPhone string `gorm:"type:varchar(50)"`

	Status string `gorm:"type:varchar(20);index;not null"`

	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	FinalAmount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency       string          `gorm:"type:varchar(3)"`

	PaymentMethod string `gorm:"type:varchar(50)"`
	PaymentStatus string `gorm:"type:varchar(50)"`

	ShippingAddress string `gorm:"type:text"`
	BillingAddress  string `gorm:"type:text"`
	Notes           string `gorm:"type:text"`

	TrackingNumber        string `gorm:"type:varchar(100);index"`
	EstimatedDeliveryDate *time.Time
	DeliveredAt           *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Items         []OrderItemDTO     `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	StatusHistory []StatusHistoryDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a persisted order line item.
type OrderItemDTO struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID string `gorm:"type:varchar(50);index;not null"`

	ProductID       string `gorm:"type:varchar(50);not null"`
	ProductName     string `gorm:"type:varchar(200);not null"`
	ProductSKU      string `gorm:"type:varchar(100)"`
	ProductImageURL string `gorm:"type:text"`

	UnitPrice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity       int
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(12,2)"`

	Notes string `gorm:"type:text"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO represents a persisted status history entry.
// FromStatus is null only for the implicit initial entry.
type StatusHistoryDTO struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID string `gorm:"type:varchar(50);index;not null"`

	FromStatus *string `gorm:"type:varchar(20)"`
	ToStatus   string  `gorm:"type:varchar(20);not null"`
	Reason     string  `gorm:"type:text"`
	ChangedBy  string  `gorm:"type:varchar(100)"`
	ChangedAt  time.Time
}

// TableName specifies the database table name for status history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation,
// including the owned item and history rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:              item.ID(),
			OrderID:         aggregate.ID(),
			ProductID:       item.ProductID(),
			ProductName:     item.ProductName(),
			ProductSKU:      item.ProductSKU(),
			ProductImageURL: item.ProductImageURL(),
			UnitPrice:       item.UnitPrice().Amount(),
			Quantity:        item.Quantity(),
			DiscountAmount:  item.DiscountAmount().Amount(),
			TaxAmount:       item.TaxAmount().Amount(),
			Notes:           item.Notes(),
		})
	}

	history := make([]StatusHistoryDTO, 0, len(aggregate.StatusHistory()))
	for _, entry := range aggregate.StatusHistory() {
		var from *string
		if entry.FromStatus() != nil {
			s := entry.FromStatus().String()
			from = &s
		}
		history = append(history, StatusHistoryDTO{
			ID:         entry.ID(),
			OrderID:    aggregate.ID(),
			FromStatus: from,
			ToStatus:   entry.ToStatus().String(),
			Reason:     entry.Reason(),
			ChangedBy:  entry.ChangedBy(),
			ChangedAt:  entry.ChangedAt(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID(),
		CustomerID:            aggregate.CustomerID(),
		CustomerName:          aggregate.CustomerName(),
		CustomerEmail:         aggregate.CustomerEmail(),
		CustomerPhone:         aggregate.CustomerPhone(),
		Status:                aggregate.Status().String(),
		TotalAmount:           aggregate.TotalAmount().Amount(),
		DiscountAmount:        aggregate.DiscountAmount().Amount(),
		TaxAmount:             aggregate.TaxAmount().Amount(),
		ShippingAmount:        aggregate.ShippingAmount().Amount(),
		FinalAmount:           aggregate.FinalAmount().Amount(),
		Currency:              aggregate.Currency(),
		PaymentMethod:         aggregate.PaymentMethod(),
		PaymentStatus:         aggregate.PaymentStatus(),
		ShippingAddress:       aggregate.ShippingAddress(),
		BillingAddress:        aggregate.BillingAddress(),
		Notes:                 aggregate.Notes(),
		TrackingNumber:        aggregate.TrackingNumber(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		DeliveredAt:           aggregate.DeliveredAt(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 items,
		StatusHistory:         history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(
			item.ID,
			item.ProductID,
			item.ProductName,
			item.ProductSKU,
			item.ProductImageURL,
			kernel.RestoreMoney(item.UnitPrice),
			item.Quantity,
			kernel.RestoreMoney(item.DiscountAmount),
			kernel.RestoreMoney(item.TaxAmount),
			item.Notes,
		))
	}

	history := make([]*order.StatusHistory, 0, len(dto.StatusHistory))
	for _, entry := range dto.StatusHistory {
		var from *order.Status
		if entry.FromStatus != nil {
			s := order.Status(*entry.FromStatus)
			from = &s
		}
		history = append(history, order.RestoreStatusHistory(
			entry.ID,
			from,
			order.Status(entry.ToStatus),
			entry.Reason,
			entry.ChangedBy,
			entry.ChangedAt,
		))
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                    dto.ID,
		CustomerID:            dto.CustomerID,
		CustomerName:          dto.CustomerName,
		CustomerEmail:         dto.CustomerEmail,
		CustomerPhone:         dto.CustomerPhone,
		Status:                order.Status(dto.Status),
		DiscountAmount:        kernel.RestoreMoney(dto.DiscountAmount),
		TaxAmount:             kernel.RestoreMoney(dto.TaxAmount),
		ShippingAmount:        kernel.RestoreMoney(dto.ShippingAmount),
		Currency:              dto.Currency,
		PaymentMethod:         dto.PaymentMethod,
		PaymentStatus:         dto.PaymentStatus,
		ShippingAddress:       dto.ShippingAddress,
		BillingAddress:        dto.BillingAddress,
		Notes:                 dto.Notes,
		TrackingNumber:        dto.TrackingNumber,
		EstimatedDeliveryDate: dto.EstimatedDeliveryDate,
		DeliveredAt:           dto.DeliveredAt,
		CreatedAt:             dto.CreatedAt,
		UpdatedAt:             dto.UpdatedAt,
		Items:                 items,
		StatusHistory:         history,
	})
}
