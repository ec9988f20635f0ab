package commands

import (
	"context"

	"cardmarket/internal/pkg/errs"
)

// UpdateShipmentDetailsCommandHandler edits a shipment's side-channel fields.
// No status change is involved, so nothing is published.
type UpdateShipmentDetailsCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentDetailsCommandHandler creates a handler for detail edits.
func NewUpdateShipmentDetailsCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentDetailsCommandHandler {
	return UpdateShipmentDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the details update command.
func (h UpdateShipmentDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentDetailsCommand) error {
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

	repo := uow.ShipmentRepository()

	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewUnauthorizedError("actor is not the origin intermediary")
	}

	if err = aggregate.UpdateDetails(cmd.Notes(), cmd.ScheduledDispatchDate()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
