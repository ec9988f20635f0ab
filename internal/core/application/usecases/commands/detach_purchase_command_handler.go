package commands

import (
	"context"
)

// DetachPurchaseCommandHandler detaches a purchase from a shipment. The
// detached purchase leaves the aggregate's collection, so it is persisted
// explicitly through the purchase repository in the same transaction.
type DetachPurchaseCommandHandler struct {
	uowFactory UoWFactory
}

// NewDetachPurchaseCommandHandler creates a handler for purchase detachment.
func NewDetachPurchaseCommandHandler(uowFactory UoWFactory) DetachPurchaseCommandHandler {
	return DetachPurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detach command.
func (h DetachPurchaseCommandHandler) Handle(ctx context.Context, cmd DetachPurchaseCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	purchaseRepo := uow.PurchaseRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	detached, err := aggregate.DetachPurchase(cmd.PurchaseID())
	if err != nil {
		return err
	}

	if err = purchaseRepo.Update(ctx, detached); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
