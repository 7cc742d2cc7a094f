package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// RejectStoreOrderCommandHandler handles a store rejecting its store order.
//
// Rejection is terminal. The parent order's aggregate totals lose this
// store order's contribution in the same transaction, so the buyer's
// grand total only ever reflects store orders still in play.
type RejectStoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRejectStoreOrderCommandHandler creates a handler for store order rejection.
func NewRejectStoreOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) RejectStoreOrderCommandHandler {
	return RejectStoreOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the reject command. The store order moves to rejected
// and the parent order drops its subtotal and delivery fee atomically.
func (h *RejectStoreOrderCommandHandler) Handle(ctx context.Context, cmd RejectStoreOrderCommand) error {
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

	// Rejection is only reachable from pending, so the fee here is zero;
	// captured anyway to keep the removal symmetric with cancellation.
	subtotal := aggregate.Subtotal()
	deliveryFee := aggregate.DeliveryFee()

	if err = aggregate.Reject(cmd.Reason()); err != nil {
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
		Recipient: parent.BuyerID(),
		Event:     ports.EventStoreOrderRejected,
		Payload: map[string]string{
			"store_order_id": aggregate.ID().String(),
			"order_id":       parent.ID().String(),
			"reason":         aggregate.RejectionReason(),
		},
	})

	return nil
}
