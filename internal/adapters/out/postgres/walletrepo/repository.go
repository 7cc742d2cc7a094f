package walletrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements WalletRepository using GORM.
//
// Debit locks the wallet row FOR UPDATE before checking the balance, so two
// concurrent payments from the same wallet serialize and cannot both spend
// the same funds.
type GormWalletRepository struct {
	db *gorm.DB
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB) *GormWalletRepository {
	return &GormWalletRepository{db: db}
}

// Debit withdraws amount from the buyer's wallet. A missing wallet reads as
// a zero balance, which reports the same ErrInsufficientFunds a low balance
// does.
func (r *GormWalletRepository) Debit(ctx context.Context, buyerID kernel.UUID, amount kernel.Money) error {
	if err := errors.Join(buyerID.Validate(), amount.Validate()); err != nil {
		return err
	}

	var dto WalletDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "buyer_id = ?", buyerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ErrInsufficientFunds
		}
		return err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return err
	}

	remaining, err := balance.Sub(amount)
	if err != nil {
		return ports.ErrInsufficientFunds
	}

	return r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("buyer_id = ?", dto.BuyerID).
		Updates(map[string]any{
			"balance":    remaining.Decimal(),
			"updated_at": time.Now().UTC(),
		}).Error
}

// Credit deposits amount into the buyer's wallet, creating the wallet on
// first use.
func (r *GormWalletRepository) Credit(ctx context.Context, buyerID kernel.UUID, amount kernel.Money) error {
	if err := errors.Join(buyerID.Validate(), amount.Validate()); err != nil {
		return err
	}

	var dto WalletDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "buyer_id = ?", buyerID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dto = WalletDTO{
			BuyerID:   buyerID.Bytes(),
			Balance:   amount.Decimal(),
			UpdatedAt: time.Now().UTC(),
		}
		return r.db.WithContext(ctx).Create(&dto).Error
	}
	if err != nil {
		return err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("buyer_id = ?", dto.BuyerID).
		Updates(map[string]any{
			"balance":    balance.Add(amount).Decimal(),
			"updated_at": time.Now().UTC(),
		}).Error
}

// Balance returns the buyer's current wallet balance. A missing wallet
// reads as zero.
func (r *GormWalletRepository) Balance(ctx context.Context, buyerID kernel.UUID) (kernel.Money, error) {
	if err := buyerID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var dto WalletDTO
	if err := r.db.WithContext(ctx).First(&dto, "buyer_id = ?", buyerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.ZeroMoney(), nil
		}
		return kernel.Money{}, err
	}

	return kernel.NewMoney(dto.Balance)
}
