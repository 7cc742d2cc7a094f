package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// PlaceOrderCommandHandler handles checkout. The buyer's cart is split into
// one pending store order per store plus the parent order carrying the
// aggregate totals, all persisted in a single transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, splitter, notifier)
//	cmd, _ := NewPlaceOrderCommand(buyerID, lines)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// result.Order and result.StoreOrders are persisted; each store has
//	// been notified of its new pending store order
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	splitter   services.CheckoutSplitter
	notifier   ports.Notifier
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	splitter services.CheckoutSplitter,
	notifier ports.Notifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		splitter:   splitter,
		notifier:   notifier,
	}
}

// Handle processes the checkout command and returns the created aggregates.
// The order and every store order persist atomically; each affected store
// is notified after the transaction commits.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (*services.CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	result, err := h.splitter.Split(cmd.BuyerID(), cmd.Lines(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, result.Order); err != nil {
		return nil, err
	}

	storeOrderRepo := uow.StoreOrderRepository()
	for _, so := range result.StoreOrders {
		if err = storeOrderRepo.Add(ctx, so); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, so := range result.StoreOrders {
		h.notifier.Notify(ctx, ports.Notification{
			Recipient: so.StoreID(),
			Event:     ports.EventStoreOrderPlaced,
			Payload: map[string]string{
				"store_order_id": so.ID().String(),
				"order_id":       result.Order.ID().String(),
				"order_number":   result.Order.Number().String(),
				"subtotal":       so.Subtotal().String(),
			},
		})
	}

	return result, nil
}
