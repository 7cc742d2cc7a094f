package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPayStoreOrderCommandIsNotConstructed = errors.New(
		"PayStoreOrderCommand must be created via NewPayStoreOrderCommand constructor",
	)
)

// PayStoreOrderCommand represents a buyer paying for an accepted store order
// from their wallet. Payment covers the store order's total (subtotal plus
// delivery fee).
type PayStoreOrderCommand struct { //nolint:recvcheck //using for validation
	storeOrderID kernel.UUID
	buyerID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayStoreOrderCommand creates a command to pay for a store order.
func NewPayStoreOrderCommand(storeOrderID, buyerID kernel.UUID) (PayStoreOrderCommand, error) {
	command := PayStoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreOrderID(storeOrderID),
		command.setBuyerID(buyerID),
	); err != nil {
		return PayStoreOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PayStoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayStoreOrderCommandIsNotConstructed)
}

// StoreOrderID returns the store order being paid for.
func (c PayStoreOrderCommand) StoreOrderID() kernel.UUID {
	return c.storeOrderID
}

// BuyerID returns the paying buyer's identifier.
func (c PayStoreOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *PayStoreOrderCommand) setStoreOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeOrderID = id
	return nil
}

func (c *PayStoreOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}
