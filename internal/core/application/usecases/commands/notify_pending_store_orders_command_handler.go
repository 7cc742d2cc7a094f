package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// NotifyPendingStoreOrdersCommandHandler sends reminder notifications to
// stores sitting on aging pending store orders.
//
// The sweep is read-only with respect to store orders and is deduplicated
// through the reminder tracker, so a store is nagged at most once per
// tracker expiry window even though the job runs far more often.
type NotifyPendingStoreOrdersCommandHandler struct {
	uowFactory StoreOrderUoWFactory
	tracker    ports.ReminderTracker
	notifier   ports.Notifier
}

// NewNotifyPendingStoreOrdersCommandHandler creates a handler for reminder sweeps.
func NewNotifyPendingStoreOrdersCommandHandler(
	uowFactory StoreOrderUoWFactory,
	tracker ports.ReminderTracker,
	notifier ports.Notifier,
) NotifyPendingStoreOrdersCommandHandler {
	return NotifyPendingStoreOrdersCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		notifier:   notifier,
	}
}

// Handle runs one reminder sweep. Tracker failures for a single store order
// skip that store order rather than aborting the sweep.
func (h *NotifyPendingStoreOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd NotifyPendingStoreOrdersCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	pending, err := uow.StoreOrderRepository().GetPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, so := range pending {
		reminded, err := h.tracker.AlreadyReminded(ctx, so.ID())
		if err != nil || reminded {
			continue
		}

		h.notifier.Notify(ctx, ports.Notification{
			Recipient: so.StoreID(),
			Event:     ports.EventStoreOrderPendingReminder,
			Payload: map[string]string{
				"store_order_id": so.ID().String(),
				"order_id":       so.OrderID().String(),
				"pending_since":  so.CreatedAt().Format(time.RFC3339),
			},
		})

		_ = h.tracker.MarkReminded(ctx, so.ID())
	}

	return nil
}
