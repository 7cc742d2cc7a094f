package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrInsufficientFunds is returned by Debit when the wallet balance does not
// cover the requested amount. The surrounding transaction must roll back.
var ErrInsufficientFunds = errors.New("insufficient wallet funds")

// WalletRepository is the payment collaborator for wallet-method payments.
// Debit and Credit run inside the caller's transaction, so a failed debit
// rolls back the store order's status change with it.
type WalletRepository interface {
	// Debit withdraws amount from the buyer's wallet.
	// Returns ErrInsufficientFunds when the balance is too low; a missing
	// wallet is reported the same way.
	Debit(ctx context.Context, buyerID kernel.UUID, amount kernel.Money) error

	// Credit deposits amount into the buyer's wallet, creating it on first use.
	Credit(ctx context.Context, buyerID kernel.UUID, amount kernel.Money) error

	// Balance returns the buyer's current wallet balance.
	// A missing wallet reads as a zero balance.
	Balance(ctx context.Context, buyerID kernel.UUID) (kernel.Money, error)
}
