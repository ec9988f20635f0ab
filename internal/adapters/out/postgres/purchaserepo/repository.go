package purchaserepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/pkg/errs"
)

// GormPurchaseRepository implements PurchaseRepository using GORM.
type GormPurchaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPurchaseRepository creates a new GORM purchase repository.
func NewGormPurchaseRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseRepository {
	return &GormPurchaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase to the database at version 1, line items included.
func (r *GormPurchaseRepository) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing purchase. The write is a compare-and-swap on the
// version the aggregate was read at; zero rows affected means another
// transaction won the race and the caller gets errs.ErrVersionIsInvalid.
// Line items are immutable and never rewritten.
func (r *GormPurchaseRepository) Update(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&PurchaseDTO{}).
		Omit(clause.Associations).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("buyer_id", "total_cents", "total_currency", "status", "delivery_address", "shipment_id", "version").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("purchase")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a purchase by ID with its line items loaded.
func (r *GormPurchaseRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseDTO
	if err := r.db.WithContext(ctx).Preload("LineItems").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}
