package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
		"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
	)
)

// MarkOutForDeliveryCommand represents a store dispatching a paid store
// order to the buyer.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	storeOrderID kernel.UUID
	storeID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOutForDeliveryCommand creates a command to dispatch a store order.
func NewMarkOutForDeliveryCommand(storeOrderID, storeID kernel.UUID) (MarkOutForDeliveryCommand, error) {
	command := MarkOutForDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreOrderID(storeOrderID),
		command.setStoreID(storeID),
	); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

// StoreOrderID returns the store order being dispatched.
func (c MarkOutForDeliveryCommand) StoreOrderID() kernel.UUID {
	return c.storeOrderID
}

// StoreID returns the acting store's identifier.
func (c MarkOutForDeliveryCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c *MarkOutForDeliveryCommand) setStoreOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeOrderID = id
	return nil
}

func (c *MarkOutForDeliveryCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeID = id
	return nil
}
