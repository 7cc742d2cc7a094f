package storeorderrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStoreOrderRepository implements StoreOrderRepository using GORM.
//
// All single-row reads lock the store order FOR UPDATE when called inside a
// transaction. The row lock is what serializes concurrent transitions on
// the same store order; postgres simply ignores the clause outside of a
// transaction.
type GormStoreOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStoreOrderRepository creates a new GORM store order repository.
func NewGormStoreOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreOrderRepository {
	return &GormStoreOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new store order and its items to the database.
func (r *GormStoreOrderRepository) Add(ctx context.Context, aggregate *storeorder.StoreOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing store order to the database. Items are immutable
// after checkout, so only the parent row is rewritten.
func (r *GormStoreOrderRepository) Update(ctx context.Context, aggregate *storeorder.StoreOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StoreOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a store order by ID with its items.
func (r *GormStoreOrderRepository) Get(ctx context.Context, id kernel.UUID) (*storeorder.StoreOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getFirst(ctx, id, "id = ?", id.Bytes())
}

// GetForStore retrieves a store order scoped to the acting store. A store
// order owned by a different store is reported as not found, so a caller
// cannot distinguish foreign rows from missing ones.
func (r *GormStoreOrderRepository) GetForStore(
	ctx context.Context,
	id, storeID kernel.UUID,
) (*storeorder.StoreOrder, error) {
	if err := errors.Join(id.Validate(), storeID.Validate()); err != nil {
		return nil, err
	}

	return r.getFirst(ctx, id, "id = ? AND store_id = ?", id.Bytes(), storeID.Bytes())
}

// GetForBuyer retrieves a store order scoped to the buyer who owns the
// parent order. Same not-found semantics as GetForStore.
func (r *GormStoreOrderRepository) GetForBuyer(
	ctx context.Context,
	id, buyerID kernel.UUID,
) (*storeorder.StoreOrder, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate()); err != nil {
		return nil, err
	}

	var dto StoreOrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "store_orders"}}).
		Preload("Items").
		Joins("JOIN orders ON orders.id = store_orders.order_id").
		First(&dto, "store_orders.id = ? AND orders.buyer_id = ?", id.Bytes(), buyerID.Bytes()).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeliveryCodeInUse reports whether the code is assigned to any store order
// currently in the paid or out_for_delivery status.
func (r *GormStoreOrderRepository) DeliveryCodeInUse(
	ctx context.Context,
	code storeorder.DeliveryCode,
) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&StoreOrderDTO{}).
		Where("delivery_code = ? AND status IN ?",
			code.String(),
			[]string{storeorder.Paid.String(), storeorder.OutForDelivery.String()},
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetPendingCreatedBefore retrieves store orders still pending since before
// the cutoff, oldest first. Used by the reminder job; takes no locks.
func (r *GormStoreOrderRepository) GetPendingCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*storeorder.StoreOrder, error) {
	var dtos []StoreOrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND created_at < ?", storeorder.Pending.String(), cutoff).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	aggregates := make([]*storeorder.StoreOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

func (r *GormStoreOrderRepository) getFirst(
	ctx context.Context,
	id kernel.UUID,
	query string,
	args ...any,
) (*storeorder.StoreOrder, error) {
	var dto StoreOrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&dto, append([]any{query}, args...)...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
