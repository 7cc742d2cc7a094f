package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrTopUpWalletCommandIsNotConstructed = errors.New(
		"TopUpWalletCommand must be created via NewTopUpWalletCommand constructor",
	)
)

// TopUpWalletCommand represents a buyer adding funds to their wallet.
type TopUpWalletCommand struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewTopUpWalletCommand creates a wallet top-up command. The amount must be
// strictly positive.
func NewTopUpWalletCommand(buyerID kernel.UUID, amount kernel.Money) (TopUpWalletCommand, error) {
	command := TopUpWalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBuyerID(buyerID),
		command.setAmount(amount),
	); err != nil {
		return TopUpWalletCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TopUpWalletCommand) Validate() error {
	return c.guard.Validate(ErrTopUpWalletCommandIsNotConstructed)
}

// BuyerID returns the wallet owner's identifier.
func (c TopUpWalletCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Amount returns the amount to credit.
func (c TopUpWalletCommand) Amount() kernel.Money {
	return c.amount
}

func (c *TopUpWalletCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *TopUpWalletCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidError("amount must be positive")
	}
	c.amount = amount
	return nil
}
