package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// AcceptStoreOrderCommandHandler handles a store accepting its store order.
//
// Accepting sets the delivery fee and recomputes the store order's total.
// The parent order's shipping and grand totals gain the fee in the same
// transaction, keeping the cross-aggregate totals invariant intact. The
// buyer is notified once the transaction commits.
type AcceptStoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptStoreOrderCommandHandler creates a handler for store order acceptance.
func NewAcceptStoreOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) AcceptStoreOrderCommandHandler {
	return AcceptStoreOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the accept command.
//
// Loads the store order scoped to the acting store (a foreign store order
// reads as not found), applies the pending → accepted transition, then
// locks the parent order and adds the delivery fee to its totals. Both
// aggregates persist atomically; any failure rolls the whole thing back.
func (h *AcceptStoreOrderCommandHandler) Handle(ctx context.Context, cmd AcceptStoreOrderCommand) error {
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

	if err = aggregate.Accept(
		cmd.DeliveryFee(),
		cmd.EstimatedDeliveryDate(),
		cmd.DeliveryMethod(),
		cmd.DeliveryNotes(),
	); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	if err = parent.AddDeliveryFee(cmd.DeliveryFee()); err != nil {
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
		Event:     ports.EventStoreOrderAccepted,
		Payload: map[string]string{
			"store_order_id": aggregate.ID().String(),
			"order_id":       parent.ID().String(),
			"delivery_fee":   aggregate.DeliveryFee().String(),
			"total":          aggregate.Total().String(),
		},
	})

	return nil
}
