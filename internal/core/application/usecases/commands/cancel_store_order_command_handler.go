package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// CancelStoreOrderCommandHandler handles a buyer cancelling a pending store
// order. Like rejection the transition is terminal and the parent order
// drops the store order's contribution in the same transaction; the store
// is notified once the cancellation commits.
type CancelStoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCancelStoreOrderCommandHandler creates a handler for store order cancellation.
func NewCancelStoreOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) CancelStoreOrderCommandHandler {
	return CancelStoreOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancel command. The store order is loaded scoped to
// the buyer, so another buyer's store order reads as not found.
func (h *CancelStoreOrderCommandHandler) Handle(ctx context.Context, cmd CancelStoreOrderCommand) error {
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
	aggregate, err := storeOrderRepo.GetForBuyer(ctx, cmd.StoreOrderID(), cmd.BuyerID())
	if err != nil {
		return err
	}

	subtotal := aggregate.Subtotal()
	deliveryFee := aggregate.DeliveryFee()

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	if err = parent.RemoveStoreOrderContribution(subtotal, deliveryFee); err != nil {
		return err
	}

	if err = storeOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: aggregate.StoreID(),
		Event:     ports.EventStoreOrderCancelled,
		Payload: map[string]string{
			"store_order_id": aggregate.ID().String(),
			"order_id":       parent.ID().String(),
			"reason":         aggregate.CancellationReason(),
		},
	})

	return nil
}
