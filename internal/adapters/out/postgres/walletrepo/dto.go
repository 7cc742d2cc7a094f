// Package walletrepo provides persistence for buyer wallet balances.
// Wallets are simple keyed balances rather than full aggregates, so the
// repository works on rows directly instead of going through a domain
// restore step.
package walletrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDTO represents the database structure for persisting wallet balances.
type WalletDTO struct {
	BuyerID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for wallet entities.
// Overrides GORM's default naming convention to use "wallets".
func (WalletDTO) TableName() string {
	return "wallets"
}
