package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
)

// MarkDeliveredCommand represents a store confirming handover of a store
// order to the buyer. The buyer proves their identity by telling the courier
// the delivery code shown in their account; the code travels with the
// confirmation request.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	storeOrderID kernel.UUID
	storeID      kernel.UUID
	deliveryCode string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to confirm delivery. The code is
// kept as the raw string the courier typed; matching against the stored code
// is exact, so no trimming or normalization happens here.
func NewMarkDeliveredCommand(
	storeOrderID kernel.UUID,
	storeID kernel.UUID,
	deliveryCode string,
) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreOrderID(storeOrderID),
		command.setStoreID(storeID),
		command.setDeliveryCode(deliveryCode),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// StoreOrderID returns the store order being delivered.
func (c MarkDeliveredCommand) StoreOrderID() kernel.UUID {
	return c.storeOrderID
}

// StoreID returns the acting store's identifier.
func (c MarkDeliveredCommand) StoreID() kernel.UUID {
	return c.storeID
}

// DeliveryCode returns the code presented by the buyer, verbatim.
func (c MarkDeliveredCommand) DeliveryCode() string {
	return c.deliveryCode
}

func (c *MarkDeliveredCommand) setStoreOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeOrderID = id
	return nil
}

func (c *MarkDeliveredCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.storeID = id
	return nil
}

func (c *MarkDeliveredCommand) setDeliveryCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("delivery code")
	}
	c.deliveryCode = code
	return nil
}
