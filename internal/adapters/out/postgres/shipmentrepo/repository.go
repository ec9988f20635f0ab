package shipmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cardmarket/internal/adapters/out/postgres/purchaserepo"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/pkg/errs"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database at version 1.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment together with its attached purchases.
// The shipment row write is a compare-and-swap on the version the aggregate
// was read at; a lost race surfaces as errs.ErrVersionIsInvalid and nothing
// of the transaction sticks. Each purchase row goes through the purchase
// repository's own versioned update.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Omit(clause.Associations).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select(
			"status", "destination_intermediary_id", "min_purchase_threshold",
			"price_per_purchase_cents", "price_per_purchase_currency",
			"scheduled_dispatch_date", "delivered_date", "notes", "version",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("shipment")
	}

	purchaseRepo := purchaserepo.NewGormPurchaseRepository(r.db, r.tracker)
	for _, p := range aggregate.Purchases() {
		if err := purchaseRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID with its purchase collection loaded.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Purchases.LineItems").
		Preload("Purchases").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrigin retrieves every shipment originating at the intermediary.
func (r *GormShipmentRepository) GetAllByOrigin(ctx context.Context, intermediaryID kernel.UUID) ([]*shipment.Shipment, error) {
	return r.findAll(ctx, "origin_intermediary_id = ?", intermediaryID.Bytes())
}

// GetAllByDestination retrieves every shipment destined for the intermediary.
func (r *GormShipmentRepository) GetAllByDestination(ctx context.Context, intermediaryID kernel.UUID) ([]*shipment.Shipment, error) {
	return r.findAll(ctx, "destination_intermediary_id = ?", intermediaryID.Bytes())
}

// GetAllInPlannedStatus retrieves all shipments still in Planned status.
func (r *GormShipmentRepository) GetAllInPlannedStatus(ctx context.Context) ([]*shipment.Shipment, error) {
	return r.findAll(ctx, "status = ?", int(shipment.Planned))
}

// Delete removes a shipment row. Callers must have checked CanBeDeleted, so
// no purchase rows reference it anymore.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}
	return nil
}

func (r *GormShipmentRepository) findAll(ctx context.Context, condition string, arg any) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Purchases.LineItems").
		Preload("Purchases").
		Find(&dtos, condition, arg).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}
