package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary: one lifecycle
// operation runs inside exactly one unit of work, so a shipment transition
// and its purchase cascade commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer: rolling back after a commit is a no-op.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository

	// PurchaseRepository returns a PurchaseRepository bound to the current
	// transaction.
	PurchaseRepository() PurchaseRepository

	// IntermediaryRepository returns an IntermediaryRepository bound to the
	// current transaction.
	IntermediaryRepository() IntermediaryRepository
}
