// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the event publisher and the
// notifier. Infrastructure implements them, use case handlers depend on them.
package ports

import (
	"context"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Get loads the aggregate together with its attached purchase collection, so
// lifecycle events can apply their purchase cascades in memory and Update
// persists both sides in one transaction.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate at version 1.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment, including its purchase
	// collection. The write is a compare-and-swap on the version the aggregate
	// was read at; a lost race returns errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by ID with its purchases loaded.
	// Returns errs.ErrObjectNotFound when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllByOrigin retrieves every shipment originating at the given
	// intermediary. Used by the removal cascade.
	GetAllByOrigin(ctx context.Context, intermediaryID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllByDestination retrieves every shipment destined for the given
	// intermediary. Used by the removal cascade.
	GetAllByDestination(ctx context.Context, intermediaryID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllInPlannedStatus retrieves all shipments still in Planned status.
	// The readiness job scans these against the capacity gate.
	GetAllInPlannedStatus(ctx context.Context) ([]*shipment.Shipment, error)

	// Delete removes a shipment row. Callers must have checked CanBeDeleted.
	Delete(ctx context.Context, id kernel.UUID) error
}
