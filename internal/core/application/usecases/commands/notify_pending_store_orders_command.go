package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrNotifyPendingStoreOrdersCommandIsNotConstructed = errors.New(
		"NotifyPendingStoreOrdersCommand must be created via NewNotifyPendingStoreOrdersCommand constructor",
	)
)

// NotifyPendingStoreOrdersCommand triggers one reminder sweep over store
// orders that have been waiting in pending longer than the given age.
// Reminders only nudge the store; a pending store order never expires or
// transitions on its own.
type NotifyPendingStoreOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewNotifyPendingStoreOrdersCommand creates a reminder sweep command.
func NewNotifyPendingStoreOrdersCommand(olderThan time.Duration) (NotifyPendingStoreOrdersCommand, error) {
	command := NotifyPendingStoreOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOlderThan(olderThan); err != nil {
		return NotifyPendingStoreOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyPendingStoreOrdersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyPendingStoreOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum pending age that warrants a reminder.
func (c NotifyPendingStoreOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *NotifyPendingStoreOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidError("older-than duration must be positive")
	}
	c.olderThan = olderThan
	return nil
}
