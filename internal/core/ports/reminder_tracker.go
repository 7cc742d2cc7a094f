package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// ReminderTracker remembers which store orders were recently reminded about,
// so the pending-order reminder job does not notify the same store on every
// run. Entries expire on their own; the tracker holds no durable state.
type ReminderTracker interface {
	// AlreadyReminded reports whether a reminder for the store order was
	// sent within the expiry window.
	AlreadyReminded(ctx context.Context, storeOrderID kernel.UUID) (bool, error)

	// MarkReminded records that a reminder was just sent.
	MarkReminded(ctx context.Context, storeOrderID kernel.UUID) error
}
