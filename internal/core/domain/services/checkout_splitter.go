package services

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// CartLine is one product line of the buyer's cart, as captured at checkout.
// Product name and SKU are denormalized into the resulting order items.
type CartLine struct {
	StoreID     kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   kernel.Money
}

// CheckoutResult is the full set of aggregates produced by a checkout:
// one Order plus one StoreOrder per distinct store in the cart.
type CheckoutResult struct {
	Order       *order.Order
	StoreOrders []*storeorder.StoreOrder
}

// CheckoutSplitter is a domain service that turns a buyer's mixed-store cart
// into a buyer Order and its per-store StoreOrders.
//
// Business rules:
//   - Cart lines are grouped by store; each distinct store yields exactly
//     one pending StoreOrder, preserving first-seen store ordering
//   - Each StoreOrder's subtotal is the sum of its item line totals
//   - The Order's items total is the sum of all StoreOrder subtotals
//   - The platform fee is a configured percentage of the items total,
//     charged once per Order
type CheckoutSplitter struct {
	platformFeePercent decimal.Decimal
}

// NewCheckoutSplitter creates a splitter with the given platform fee
// percentage (e.g. 2.5 charges 2.5% of the items total).
func NewCheckoutSplitter(platformFeePercent decimal.Decimal) CheckoutSplitter {
	return CheckoutSplitter{platformFeePercent: platformFeePercent}
}

// Split builds the Order and StoreOrders for the given buyer and cart lines.
// Returns ErrEmptyCart for an empty cart, or a validation error when any
// line is invalid. Nothing is persisted here; the caller owns the transaction.
func (s CheckoutSplitter) Split(
	buyerID kernel.UUID,
	lines []CartLine,
	now time.Time,
) (*CheckoutResult, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	orderID := kernel.NewUUID()

	storeOrderIDs := make(map[string]kernel.UUID)
	itemsByStore := make(map[string][]storeorder.OrderItem)
	storeIDs := make([]kernel.UUID, 0)

	for _, line := range lines {
		if err := line.StoreID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("store id", err)
		}

		item, err := storeorder.NewOrderItem(
			kernel.NewUUID(),
			line.ProductID,
			line.ProductName,
			line.SKU,
			line.Quantity,
			line.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		key := line.StoreID.String()
		if _, seen := storeOrderIDs[key]; !seen {
			storeOrderIDs[key] = kernel.NewUUID()
			storeIDs = append(storeIDs, line.StoreID)
		}
		itemsByStore[key] = append(itemsByStore[key], item)
	}

	storeOrders := make([]*storeorder.StoreOrder, 0, len(storeIDs))
	itemsTotal := kernel.ZeroMoney()
	for _, storeID := range storeIDs {
		key := storeID.String()
		so, err := storeorder.NewStoreOrder(storeOrderIDs[key], orderID, storeID, itemsByStore[key], now)
		if err != nil {
			return nil, err
		}
		storeOrders = append(storeOrders, so)
		itemsTotal = itemsTotal.Add(so.Subtotal())
	}

	number, err := order.GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	buyerOrder, err := order.NewOrder(
		orderID,
		buyerID,
		number,
		itemsTotal,
		itemsTotal.Percent(s.platformFeePercent),
		now,
	)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{Order: buyerOrder, StoreOrders: storeOrders}, nil
}
