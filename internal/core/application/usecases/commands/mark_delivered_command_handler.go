package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// MarkDeliveredCommandHandler handles delivery confirmation for a store
// order that is out for delivery.
//
// The presented code must exactly match the store order's delivery code;
// a mismatch fails the command and leaves the store order out for delivery,
// with no attempt counting or lockout. On success the store order reaches
// its delivered terminal state with a recorded delivery time, and the buyer
// is notified.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery confirmation command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	storeOrderRepo := uow.StoreOrderRepository()
	aggregate, err := storeOrderRepo.GetForStore(ctx, cmd.StoreOrderID(), cmd.StoreID())
	if err != nil {
		return err
	}

	if err = aggregate.CompleteDelivery(cmd.DeliveryCode(), time.Now().UTC()); err != nil {
		return err
	}

	parent, err := uow.OrderRepository().Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	if err = storeOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: parent.BuyerID(),
		Event:     ports.EventStoreOrderDelivered,
		Payload: map[string]string{
			"store_order_id": aggregate.ID().String(),
			"order_id":       parent.ID().String(),
			"delivered_at":   aggregate.DeliveredAt().Format(time.RFC3339),
		},
	})

	return nil
}
