package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a buyer checking out their cart. The cart may
// span multiple stores; checkout splits it into one store order per store.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(buyerID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	lines   []services.CartLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command for the given buyer and
// cart lines. The cart must contain at least one line; per-line validation
// happens in the domain when order items are built.
func NewPlaceOrderCommand(buyerID kernel.UUID, lines []services.CartLine) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBuyerID(buyerID),
		command.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// BuyerID returns the buyer checking out.
func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Lines returns the cart lines being purchased.
func (c PlaceOrderCommand) Lines() []services.CartLine {
	return c.lines
}

func (c *PlaceOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart lines")
	}
	c.lines = lines
	return nil
}
