package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCancelStoreOrderCommandIsNotConstructed = errors.New(
		"CancelStoreOrderCommand must be created via NewCancelStoreOrderCommand constructor",
	)
)

// CancelStoreOrderCommand represents a buyer cancelling a still-pending
// store order. The reason is optional.
type CancelStoreOrderCommand struct { //nolint:recvcheck //using for validation
	storeOrderID kernel.UUID
	buyerID      kernel.UUID
	reason       string

	guard guard.ConstructorGuard
}

// NewCancelStoreOrderCommand creates a command to cancel a store order.
func NewCancelStoreOrderCommand(
	storeOrderID kernel.UUID,
	buyerID kernel.UUID,
	reason string,
) (CancelStoreOrderCommand, error) {
	command := CancelStoreOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreOrderID(storeOrderID),
		command.setBuyerID(buyerID),
	); err != nil {
		return CancelStoreOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelStoreOrderCommandIsNotConstructed)
}

// StoreOrderID returns the store order to cancel.
func (c CancelStoreOrderCommand) StoreOrderID() kernel.UUID {
	return c.storeOrderID
}

// BuyerID returns the acting buyer's identifier.
func (c CancelStoreOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Reason returns the optional cancellation reason.
func (c CancelStoreOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelStoreOrderCommand) setStoreOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeOrderID = id
	return nil
}

func (c *CancelStoreOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}
