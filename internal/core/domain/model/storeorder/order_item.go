package storeorder

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
	// through the NewOrderItem factory method.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
)

// OrderItem is a single product line within a store order. Product name and
// SKU are denormalized at time of purchase so later catalog edits do not
// rewrite order history. Items are immutable once created.
//
// Invariant: line total = unit price × quantity.
type OrderItem struct {
	id            kernel.UUID
	productID     kernel.UUID
	productName   string
	sku           string
	quantity      int
	unitPrice     kernel.Money
	lineTotal     kernel.Money
	isConstructed bool
}

// NewOrderItem creates a validated order item and computes its line total.
//
// Validation rules:
//   - id and productID must be valid UUIDs
//   - productName must not be empty
//   - quantity must be positive
//   - unitPrice must be a constructed Money value
func NewOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	sku string,
	quantity int,
	unitPrice kernel.Money,
) (OrderItem, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		validateProductName(productName),
		validateQuantity(quantity),
		unitPrice.Validate(),
	); err != nil {
		return OrderItem{}, err
	}

	return OrderItem{
		id:            id,
		productID:     productID,
		productName:   productName,
		sku:           sku,
		quantity:      quantity,
		unitPrice:     unitPrice,
		lineTotal:     unitPrice.MulInt(quantity),
		isConstructed: true,
	}, nil
}

// RestoreOrderItem reconstructs an order item from persistence, including
// its stored line total.
func RestoreOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	sku string,
	quantity int,
	unitPrice kernel.Money,
	lineTotal kernel.Money,
) (OrderItem, error) {
	item, err := NewOrderItem(id, productID, productName, sku, quantity, unitPrice)
	if err != nil {
		return OrderItem{}, err
	}
	if !item.lineTotal.IsEqual(lineTotal) {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"line total",
			fmt.Errorf("%s does not equal %s x %d", lineTotal, unitPrice, quantity),
		)
	}

	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i OrderItem) Validate() error {
	if !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the purchased product's identifier.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at time of purchase.
func (i OrderItem) ProductName() string {
	return i.productName
}

// SKU returns the product SKU captured at time of purchase.
func (i OrderItem) SKU() string {
	return i.sku
}

// Quantity returns the purchased quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit at time of purchase.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unit price × quantity.
func (i OrderItem) LineTotal() kernel.Money {
	return i.lineTotal
}

func validateProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}
