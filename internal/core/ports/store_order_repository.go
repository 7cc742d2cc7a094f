package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"
)

// StoreOrderRepository defines the persistence contract for store order
// aggregates. Reads inside a transaction take a row lock, which is what
// serializes concurrent transitions on the same store order: a racing
// accept and reject resolve so exactly one succeeds and the other fails
// its guard against the freshly-read status.
type StoreOrderRepository interface {
	// Add persists a new store order aggregate including its order items.
	Add(ctx context.Context, aggregate *storeorder.StoreOrder) error

	// Update persists changes to an existing store order aggregate.
	// Order items are immutable and are not rewritten.
	Update(ctx context.Context, aggregate *storeorder.StoreOrder) error

	// Get retrieves a store order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*storeorder.StoreOrder, error)

	// GetForStore retrieves a store order by identifier, scoped to the acting
	// store. A store order belonging to a different store is reported as
	// not found, indistinguishable from a missing row.
	GetForStore(ctx context.Context, id, storeID kernel.UUID) (*storeorder.StoreOrder, error)

	// GetForBuyer retrieves a store order by identifier, scoped to the buyer
	// who owns the parent order. Same not-found semantics as GetForStore.
	GetForBuyer(ctx context.Context, id, buyerID kernel.UUID) (*storeorder.StoreOrder, error)

	// DeliveryCodeInUse reports whether the given code is currently assigned
	// to any store order in the paid or out_for_delivery status. Used to keep
	// delivery codes unique among active store orders.
	DeliveryCodeInUse(ctx context.Context, code storeorder.DeliveryCode) (bool, error)

	// GetPendingCreatedBefore retrieves store orders still pending since
	// before the given cutoff. Used by the reminder job; never mutates state.
	GetPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*storeorder.StoreOrder, error)
}
