package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAcceptStoreOrderCommandIsNotConstructed = errors.New(
		"AcceptStoreOrderCommand must be created via NewAcceptStoreOrderCommand constructor",
	)
)

// AcceptStoreOrderCommand represents a store's decision to fulfill its portion
// of a buyer order. The store sets the delivery fee and may promise an
// estimated delivery date, method, and notes.
//
// Example:
//
//	fee, _ := kernel.MoneyFromFloat(10.00)
//	cmd, err := NewAcceptStoreOrderCommand(storeOrderID, storeID, fee, nil, "courier", "")
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("accept failed: %w", err)
//	}
type AcceptStoreOrderCommand struct { //nolint:recvcheck //using for validation
	storeOrderID          kernel.UUID
	storeID               kernel.UUID
	deliveryFee           kernel.Money
	estimatedDeliveryDate *time.Time
	deliveryMethod        string
	deliveryNotes         string

	guard guard.ConstructorGuard
}

// NewAcceptStoreOrderCommand creates a command to accept a store order.
// Validates the identifiers and the delivery fee (non-negative by Money
// construction). Date, method, and notes are optional.
func NewAcceptStoreOrderCommand(
	storeOrderID kernel.UUID,
	storeID kernel.UUID,
	deliveryFee kernel.Money,
	estimatedDeliveryDate *time.Time,
	deliveryMethod string,
	deliveryNotes string,
) (AcceptStoreOrderCommand, error) {
	command := AcceptStoreOrderCommand{
		estimatedDeliveryDate: estimatedDeliveryDate,
		deliveryMethod:        deliveryMethod,
		deliveryNotes:         deliveryNotes,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreOrderID(storeOrderID),
		command.setStoreID(storeID),
		command.setDeliveryFee(deliveryFee),
	); err != nil {
		return AcceptStoreOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptStoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptStoreOrderCommandIsNotConstructed)
}

// StoreOrderID returns the store order to accept.
func (c AcceptStoreOrderCommand) StoreOrderID() kernel.UUID {
	return c.storeOrderID
}

// StoreID returns the acting store's identifier.
func (c AcceptStoreOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// DeliveryFee returns the fee the store charges for delivery.
func (c AcceptStoreOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// EstimatedDeliveryDate returns the promised delivery date, if any.
func (c AcceptStoreOrderCommand) EstimatedDeliveryDate() *time.Time {
	return c.estimatedDeliveryDate
}

// DeliveryMethod returns the delivery method chosen by the store.
func (c AcceptStoreOrderCommand) DeliveryMethod() string {
	return c.deliveryMethod
}

// DeliveryNotes returns free-form notes for the buyer.
func (c AcceptStoreOrderCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

func (c *AcceptStoreOrderCommand) setStoreOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeOrderID = id
	return nil
}

func (c *AcceptStoreOrderCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeID = id
	return nil
}

func (c *AcceptStoreOrderCommand) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	c.deliveryFee = fee
	return nil
}
