package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRejectStoreOrderCommandIsNotConstructed = errors.New(
		"RejectStoreOrderCommand must be created via NewRejectStoreOrderCommand constructor",
	)
)

// RejectStoreOrderCommand represents a store declining to fulfill its store
// order. A reason is mandatory so the buyer learns why.
type RejectStoreOrderCommand struct { //nolint:recvcheck //using for validation
	storeOrderID kernel.UUID
	storeID      kernel.UUID
	reason       string

	guard guard.ConstructorGuard
}

// NewRejectStoreOrderCommand creates a command to reject a store order.
func NewRejectStoreOrderCommand(
	storeOrderID kernel.UUID,
	storeID kernel.UUID,
	reason string,
) (RejectStoreOrderCommand, error) {
	command := RejectStoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreOrderID(storeOrderID),
		command.setStoreID(storeID),
		command.setReason(reason),
	); err != nil {
		return RejectStoreOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectStoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectStoreOrderCommandIsNotConstructed)
}

// StoreOrderID returns the store order to reject.
func (c RejectStoreOrderCommand) StoreOrderID() kernel.UUID {
	return c.storeOrderID
}

// StoreID returns the acting store's identifier.
func (c RejectStoreOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Reason returns the rejection reason shown to the buyer.
func (c RejectStoreOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectStoreOrderCommand) setStoreOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeOrderID = id
	return nil
}

func (c *RejectStoreOrderCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeID = id
	return nil
}

func (c *RejectStoreOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.reason = reason
	return nil
}
