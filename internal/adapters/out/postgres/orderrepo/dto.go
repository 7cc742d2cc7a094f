// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the buyer order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting buyer order
// aggregates. Monetary columns use fixed-point decimals; two fraction
// digits is the precision the whole money model rounds to.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number        string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	ItemsTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PlatformFee   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		BuyerID:       aggregate.BuyerID().Bytes(),
		Number:        aggregate.Number().String(),
		ItemsTotal:    aggregate.ItemsTotal().Decimal(),
		ShippingTotal: aggregate.ShippingTotal().Decimal(),
		PlatformFee:   aggregate.PlatformFee().Decimal(),
		GrandTotal:    aggregate.GrandTotal().Decimal(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the totals invariant on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	itemsTotal, err := kernel.NewMoney(dto.ItemsTotal)
	if err != nil {
		return nil, err
	}

	shippingTotal, err := kernel.NewMoney(dto.ShippingTotal)
	if err != nil {
		return nil, err
	}

	platformFee, err := kernel.NewMoney(dto.PlatformFee)
	if err != nil {
		return nil, err
	}

	grandTotal, err := kernel.NewMoney(dto.GrandTotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, buyerID, number,
		itemsTotal, shippingTotal, platformFee, grandTotal,
		dto.CreatedAt,
	)
}
