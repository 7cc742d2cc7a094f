package commands

import (
	"context"
)

// TopUpWalletCommandHandler handles wallet top-ups. Credits create the
// wallet on first use, so a buyer never needs a separate registration step
// before funding their balance.
type TopUpWalletCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewTopUpWalletCommandHandler creates a handler for wallet top-up operations.
func NewTopUpWalletCommandHandler(uowFactory WalletUoWFactory) TopUpWalletCommandHandler {
	return TopUpWalletCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the top-up command.
func (h *TopUpWalletCommandHandler) Handle(ctx context.Context, cmd TopUpWalletCommand) error {
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

	if err := uow.WalletRepository().Credit(ctx, cmd.BuyerID(), cmd.Amount()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
