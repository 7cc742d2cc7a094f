package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// MarkOutForDeliveryCommandHandler handles a store dispatching a paid store
// order. The parent order is read only to find the buyer to notify; nothing
// on it changes.
type MarkOutForDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewMarkOutForDeliveryCommandHandler creates a handler for dispatch operations.
func NewMarkOutForDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch command, moving the store order from paid
// to out_for_delivery.
func (h *MarkOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOutForDeliveryCommand) error {
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

	if err = aggregate.StartDelivery(); err != nil {
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
		Event:     ports.EventStoreOrderOutForDelivery,
		Payload: map[string]string{
			"store_order_id": aggregate.ID().String(),
			"order_id":       parent.ID().String(),
		},
	})

	return nil
}
