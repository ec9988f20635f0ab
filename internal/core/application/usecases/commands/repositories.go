// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cardmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// PurchaseRepoFactory provides access to the purchase repository within a transaction.
	PurchaseRepoFactory interface {
		PurchaseRepository() ports.PurchaseRepository
	}

	// IntermediaryRepoFactory provides access to the intermediary repository within a transaction.
	IntermediaryRepoFactory interface {
		IntermediaryRepository() ports.IntermediaryRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations. The
	// shipment repository persists the attached purchase collection together
	// with the aggregate, so lifecycle cascades stay inside this unit.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// PurchaseUoW manages transactions for purchase-only operations.
	PurchaseUoW interface {
		TxManager
		PurchaseRepoFactory
	}

	// PurchaseUoWFactory creates new purchase unit of work instances.
	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	// IntermediaryUoW manages transactions for intermediary-only operations.
	IntermediaryUoW interface {
		TxManager
		IntermediaryRepoFactory
	}

	// IntermediaryUoWFactory creates new intermediary unit of work instances.
	IntermediaryUoWFactory interface {
		Create() IntermediaryUoW
	}

	// UoW manages transactions across all aggregates. Used by the attach and
	// detach flows and by the intermediary removal cascade.
	UoW interface {
		TxManager
		ShipmentRepoFactory
		PurchaseRepoFactory
		IntermediaryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
