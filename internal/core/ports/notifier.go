package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Notification event names published after workflow transitions.
const (
	EventStoreOrderPlaced          = "store_order.placed"
	EventStoreOrderAccepted        = "store_order.accepted"
	EventStoreOrderRejected        = "store_order.rejected"
	EventStoreOrderCancelled       = "store_order.cancelled"
	EventStoreOrderPaid            = "store_order.paid"
	EventStoreOrderOutForDelivery  = "store_order.out_for_delivery"
	EventStoreOrderDelivered       = "store_order.delivered"
	EventStoreOrderPendingReminder = "store_order.pending_reminder"
)

// Notification is a message for a buyer or store about a workflow transition.
type Notification struct {
	Recipient kernel.UUID
	Event     string
	Payload   map[string]string
}

// Notifier dispatches notifications after a transition commits.
// Delivery is fire-and-forget: implementations absorb and log failures
// so a lost notification never affects the committed transition.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}
