// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit notification.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StoreOrderRepoFactory provides access to the store order repository within a transaction.
	StoreOrderRepoFactory interface {
		StoreOrderRepository() ports.StoreOrderRepository
	}

	// WalletRepoFactory provides access to the wallet repository within a transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// StoreOrderUoW manages transactions for store-order-only operations
	// (the pending reminder scan).
	StoreOrderUoW interface {
		TxManager
		StoreOrderRepoFactory
	}

	// StoreOrderUoWFactory creates new store order unit of work instances.
	StoreOrderUoWFactory interface {
		Create() StoreOrderUoW
	}

	// OrderUoW manages transactions spanning the buyer order and its store
	// orders. Used by checkout and by transitions that recompute the parent
	// order's aggregate totals (accept, reject, cancel).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StoreOrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions spanning a store order and the buyer's
	// wallet, so a failed debit rolls the status change back with it.
	PaymentUoW interface {
		TxManager
		StoreOrderRepoFactory
		WalletRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// WalletUoW manages transactions for wallet-only operations (top-up).
	WalletUoW interface {
		TxManager
		WalletRepoFactory
	}

	// WalletUoWFactory creates new wallet unit of work instances.
	WalletUoWFactory interface {
		Create() WalletUoW
	}
)
