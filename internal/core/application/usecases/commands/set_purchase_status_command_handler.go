package commands

import (
	"context"
)

// SetPurchaseStatusCommandHandler applies a manual purchase status move.
// The adjacency chain is enforced by the aggregate.
type SetPurchaseStatusCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewSetPurchaseStatusCommandHandler creates a handler for manual purchase
// status updates.
func NewSetPurchaseStatusCommandHandler(uowFactory PurchaseUoWFactory) SetPurchaseStatusCommandHandler {
	return SetPurchaseStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h SetPurchaseStatusCommandHandler) Handle(ctx context.Context, cmd SetPurchaseStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseRepository()

	aggregate, err := repo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	if err = aggregate.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
