package commands

import (
	"context"
)

// AttachPurchaseCommandHandler attaches a purchase to a shipment. Both sides
// of the back-reference are mutated through the shipment aggregate and
// persisted in one transaction; the purchase row's shipment_id write is a
// compare-and-swap, so a racing attach from another shipment loses cleanly.
type AttachPurchaseCommandHandler struct {
	uowFactory UoWFactory
}

// NewAttachPurchaseCommandHandler creates a handler for purchase attachment.
func NewAttachPurchaseCommandHandler(uowFactory UoWFactory) AttachPurchaseCommandHandler {
	return AttachPurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attach command.
func (h AttachPurchaseCommandHandler) Handle(ctx context.Context, cmd AttachPurchaseCommand) error {
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

	p, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	if err = aggregate.AttachPurchase(p); err != nil {
		return err
	}

	// Update persists the whole aggregate, purchase collection included.
	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
