// Package storeorderrepo provides data transfer objects and mapping functions
// for store order persistence. This package implements the repository pattern
// for the store order aggregate, handling the conversion between domain
// entities and database representations.
package storeorderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreOrderDTO represents the database structure for persisting store order
// aggregates. Status is stored as its string form so the table reads
// naturally in ad hoc queries; the delivery code column is nullable and
// only populated from the paid status onward.
type StoreOrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index"`

	Status      string          `gorm:"type:varchar(32);not null;index"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	DeliveryCode          *string `gorm:"type:char(6)"`
	EstimatedDeliveryDate *time.Time
	DeliveryMethod        string `gorm:"type:varchar(64)"`
	DeliveryNotes         string `gorm:"type:text"`
	RejectionReason       string `gorm:"type:text"`
	CancellationReason    string `gorm:"type:text"`
	DeliveredAt           *time.Time
	CreatedAt             time.Time `gorm:"not null;index"`

	Items []OrderItemDTO `gorm:"foreignKey:StoreOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for store order entities.
// Overrides GORM's default naming convention to use "store_orders".
func (StoreOrderDTO) TableName() string {
	return "store_orders"
}

// OrderItemDTO represents the database structure for persisting order items.
// Items are immutable children of the store order; product name and SKU are
// denormalized copies captured at checkout.
type OrderItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"type:varchar(255);not null"`
	SKU          string          `gorm:"type:varchar(64);not null"`
	Quantity     int             `gorm:"type:int;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LineTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "store_order_items".
func (OrderItemDTO) TableName() string {
	return "store_order_items"
}

// fromDomain converts a store order domain aggregate to its database
// representation, including its order item children.
func fromDomain(aggregate *storeorder.StoreOrder) StoreOrderDTO {
	storeOrderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:           item.ID().Bytes(),
			StoreOrderID: storeOrderID,
			ProductID:    item.ProductID().Bytes(),
			ProductName:  item.ProductName(),
			SKU:          item.SKU(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Decimal(),
			LineTotal:    item.LineTotal().Decimal(),
		})
	}

	var deliveryCode *string
	if code := aggregate.DeliveryCode(); code != nil {
		raw := code.String()
		deliveryCode = &raw
	}

	return StoreOrderDTO{
		ID:      storeOrderID,
		OrderID: aggregate.OrderID().Bytes(),
		StoreID: aggregate.StoreID().Bytes(),

		Status:      aggregate.Status().String(),
		Subtotal:    aggregate.Subtotal().Decimal(),
		DeliveryFee: aggregate.DeliveryFee().Decimal(),
		Total:       aggregate.Total().Decimal(),

		DeliveryCode:          deliveryCode,
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		DeliveryMethod:        aggregate.DeliveryMethod(),
		DeliveryNotes:         aggregate.DeliveryNotes(),
		RejectionReason:       aggregate.RejectionReason(),
		CancellationReason:    aggregate.CancellationReason(),
		DeliveredAt:           aggregate.DeliveredAt(),
		CreatedAt:             aggregate.CreatedAt(),

		Items: items,
	}
}

// toDomain converts a database DTO to a store order domain aggregate using
// RestoreStoreOrder, which re-checks the totals invariant on the way in.
func toDomain(dto StoreOrderDTO) (*storeorder.StoreOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	status, err := storeorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	var deliveryCode *storeorder.DeliveryCode
	if dto.DeliveryCode != nil {
		code, codeErr := storeorder.DeliveryCodeFromString(*dto.DeliveryCode)
		if codeErr != nil {
			return nil, codeErr
		}
		deliveryCode = &code
	}

	items := make([]storeorder.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return storeorder.RestoreStoreOrder(
		id, orderID, storeID,
		status, subtotal, deliveryFee, total,
		deliveryCode,
		dto.EstimatedDeliveryDate,
		dto.DeliveryMethod,
		dto.DeliveryNotes,
		dto.RejectionReason,
		dto.CancellationReason,
		dto.DeliveredAt,
		dto.CreatedAt,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (storeorder.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return storeorder.OrderItem{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return storeorder.OrderItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return storeorder.OrderItem{}, err
	}

	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return storeorder.OrderItem{}, err
	}

	return storeorder.RestoreOrderItem(
		id, productID,
		dto.ProductName, dto.SKU, dto.Quantity,
		unitPrice, lineTotal,
	)
}
