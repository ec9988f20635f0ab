package ports

import (
	"context"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
)

// PurchaseRepository defines the persistence contract for purchase aggregates.
type PurchaseRepository interface {
	// Add persists a new purchase aggregate at version 1.
	Add(ctx context.Context, aggregate *purchase.Purchase) error

	// Update persists changes to an existing purchase. The write is a
	// compare-and-swap on the version the aggregate was read at, which also
	// guards the shipment_id back-reference against racing attach/detach.
	Update(ctx context.Context, aggregate *purchase.Purchase) error

	// Get retrieves a purchase by ID with its line items loaded.
	// Returns errs.ErrObjectNotFound when no such purchase exists.
	Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error)
}
