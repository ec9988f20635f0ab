package ports

import (
	"context"

	"cardmarket/internal/core/domain/model/intermediary"
	"cardmarket/internal/core/domain/model/kernel"
)

// IntermediaryRepository defines the persistence contract for intermediary
// aggregates.
type IntermediaryRepository interface {
	// Add persists a new intermediary.
	Add(ctx context.Context, aggregate *intermediary.Intermediary) error

	// Get retrieves an intermediary by ID.
	// Returns errs.ErrObjectNotFound when no such intermediary exists.
	Get(ctx context.Context, id kernel.UUID) (*intermediary.Intermediary, error)

	// GetByEmail retrieves an intermediary by its login email.
	// Returns errs.ErrObjectNotFound when no such intermediary exists.
	GetByEmail(ctx context.Context, email string) (*intermediary.Intermediary, error)

	// Delete removes an intermediary row. The removal cascade over its
	// shipments runs before this call.
	Delete(ctx context.Context, id kernel.UUID) error
}
