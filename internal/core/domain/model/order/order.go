package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a buyer's top-level purchase, spanning one or more stores.
// It owns its store orders (one per distinct store in the cart) and carries
// the aggregate totals shown to the buyer.
//
// Order maintains these invariants:
//   - grand total = items total + shipping total + platform fee
//   - grand total equals the sum of its store orders' totals plus the
//     platform fee (store order total = its subtotal share of items total
//     plus its delivery fee share of shipping total)
//
// An order is immutable after checkout except for aggregate recomputation:
// acceptance adds a store's delivery fee to the shipping total, and
// rejection/cancellation removes the store order's contribution entirely.
// Both recomputations are written in the same transaction as the store
// order's status change.
type Order struct {
	id      kernel.UUID
	buyerID kernel.UUID
	number  OrderNumber

	itemsTotal    kernel.Money
	shippingTotal kernel.Money
	platformFee   kernel.Money
	grandTotal    kernel.Money

	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order at checkout. The shipping total starts at zero;
// delivery fees arrive later as stores accept their portions.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	number OrderNumber,
	itemsTotal kernel.Money,
	platformFee kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		number.Validate(),
		itemsTotal.Validate(),
		platformFee.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		buyerID:       buyerID,
		number:        number,
		itemsTotal:    itemsTotal,
		shippingTotal: kernel.ZeroMoney(),
		platformFee:   platformFee,
		grandTotal:    itemsTotal.Add(platformFee),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
// The stored totals must satisfy grand = items + shipping + fee.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	number OrderNumber,
	itemsTotal kernel.Money,
	shippingTotal kernel.Money,
	platformFee kernel.Money,
	grandTotal kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		number.Validate(),
		itemsTotal.Validate(),
		shippingTotal.Validate(),
		platformFee.Validate(),
		grandTotal.Validate(),
	); err != nil {
		return nil, err
	}
	if !grandTotal.IsEqual(itemsTotal.Add(shippingTotal).Add(platformFee)) {
		return nil, errs.NewValueIsInvalidError(
			"grand total does not equal items total plus shipping total plus platform fee",
		)
	}

	return &Order{
		id:            id,
		buyerID:       buyerID,
		number:        number,
		itemsTotal:    itemsTotal,
		shippingTotal: shippingTotal,
		platformFee:   platformFee,
		grandTotal:    grandTotal,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the owning buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Number returns the human-readable order number.
func (o *Order) Number() OrderNumber {
	return o.number
}

// ItemsTotal returns the sum of store order subtotals still part of the order.
func (o *Order) ItemsTotal() kernel.Money {
	return o.itemsTotal
}

// ShippingTotal returns the sum of delivery fees of accepted store orders.
func (o *Order) ShippingTotal() kernel.Money {
	return o.shippingTotal
}

// PlatformFee returns the marketplace fee charged once per order.
func (o *Order) PlatformFee() kernel.Money {
	return o.platformFee
}

// GrandTotal returns items total + shipping total + platform fee.
func (o *Order) GrandTotal() kernel.Money {
	return o.grandTotal
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AddDeliveryFee folds a store's delivery fee into the aggregate totals
// when that store accepts its portion of the order.
func (o *Order) AddDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}

	o.shippingTotal = o.shippingTotal.Add(fee)
	o.grandTotal = o.grandTotal.Add(fee)
	return nil
}

// RemoveStoreOrderContribution recomputes the aggregate totals after a store
// order is rejected or cancelled: its subtotal leaves the items total and its
// delivery fee leaves the shipping total.
func (o *Order) RemoveStoreOrderContribution(subtotal, deliveryFee kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), deliveryFee.Validate()); err != nil {
		return err
	}

	newItemsTotal, err := o.itemsTotal.Sub(subtotal)
	if err != nil {
		return err
	}
	newShippingTotal, err := o.shippingTotal.Sub(deliveryFee)
	if err != nil {
		return err
	}

	o.itemsTotal = newItemsTotal
	o.shippingTotal = newShippingTotal
	o.grandTotal = newItemsTotal.Add(newShippingTotal).Add(o.platformFee)
	return nil
}
