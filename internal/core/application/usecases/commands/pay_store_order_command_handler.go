package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/core/ports"
)

// ErrPaymentFailed is returned when the wallet debit for a store order does
// not go through. The status change rolls back with the debit.
var ErrPaymentFailed = errors.New("payment failed")

// Delivery codes are retried on collision with another active store order.
// With a million possible codes a handful of attempts is plenty.
const maxDeliveryCodeAttempts = 5

// PayStoreOrderCommandHandler handles wallet payment for an accepted store
// order.
//
// Payment, code assignment, and the accepted → paid transition form one
// transaction: the wallet is debited for the store order's total and a
// one-time delivery code is generated, unique among store orders that are
// currently paid or out for delivery. If anything fails, including an
// insufficient balance, the whole transaction rolls back and the store
// order stays accepted.
type PayStoreOrderCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   ports.Notifier
}

// NewPayStoreOrderCommandHandler creates a handler for store order payment.
func NewPayStoreOrderCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier ports.Notifier,
) PayStoreOrderCommandHandler {
	return PayStoreOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment command. After commit the buyer receives the
// delivery code and the store learns the order is paid; the code is never
// sent to the store.
func (h *PayStoreOrderCommandHandler) Handle(ctx context.Context, cmd PayStoreOrderCommand) error {
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

	code, err := h.generateUniqueCode(ctx, storeOrderRepo)
	if err != nil {
		return err
	}

	if err = aggregate.MarkPaid(code); err != nil {
		return err
	}

	if err = uow.WalletRepository().Debit(ctx, cmd.BuyerID(), aggregate.Total()); err != nil {
		if errors.Is(err, ports.ErrInsufficientFunds) {
			return fmt.Errorf("%w: %w", ErrPaymentFailed, err)
		}
		return err
	}

	if err = storeOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: cmd.BuyerID(),
		Event:     ports.EventStoreOrderPaid,
		Payload: map[string]string{
			"store_order_id": aggregate.ID().String(),
			"amount":         aggregate.Total().String(),
			"delivery_code":  code.String(),
		},
	})
	h.notifier.Notify(ctx, ports.Notification{
		Recipient: aggregate.StoreID(),
		Event:     ports.EventStoreOrderPaid,
		Payload: map[string]string{
			"store_order_id": aggregate.ID().String(),
			"amount":         aggregate.Total().String(),
		},
	})

	return nil
}

func (h *PayStoreOrderCommandHandler) generateUniqueCode(
	ctx context.Context,
	repo ports.StoreOrderRepository,
) (storeorder.DeliveryCode, error) {
	for range maxDeliveryCodeAttempts {
		code, err := storeorder.GenerateDeliveryCode()
		if err != nil {
			return storeorder.DeliveryCode{}, err
		}

		inUse, err := repo.DeliveryCodeInUse(ctx, code)
		if err != nil {
			return storeorder.DeliveryCode{}, err
		}
		if !inUse {
			return code, nil
		}
	}

	return storeorder.DeliveryCode{}, errors.New("could not generate a unique delivery code")
}
