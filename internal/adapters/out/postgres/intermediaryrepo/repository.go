package intermediaryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cardmarket/internal/core/domain/model/intermediary"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/errs"
)

// GormIntermediaryRepository implements IntermediaryRepository using GORM.
type GormIntermediaryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIntermediaryRepository creates a new GORM intermediary repository.
func NewGormIntermediaryRepository(db *gorm.DB, tracker aggregateTracker) *GormIntermediaryRepository {
	return &GormIntermediaryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new intermediary to the database.
func (r *GormIntermediaryRepository) Add(ctx context.Context, aggregate *intermediary.Intermediary) error {
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

// Get retrieves an intermediary by ID.
func (r *GormIntermediaryRepository) Get(ctx context.Context, id kernel.UUID) (*intermediary.Intermediary, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IntermediaryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("intermediary", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an intermediary by its login email.
func (r *GormIntermediaryRepository) GetByEmail(ctx context.Context, email string) (*intermediary.Intermediary, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto IntermediaryDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("intermediary", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an intermediary row.
func (r *GormIntermediaryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&IntermediaryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("intermediary", id.String())
	}
	return nil
}
