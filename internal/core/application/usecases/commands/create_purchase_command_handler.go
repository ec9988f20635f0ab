package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/purchase"
)

// CreatePurchaseCommandHandler registers a new purchase in Pending status.
type CreatePurchaseCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewCreatePurchaseCommandHandler creates a handler for purchase creation.
func NewCreatePurchaseCommandHandler(uowFactory PurchaseUoWFactory) CreatePurchaseCommandHandler {
	return CreatePurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purchase creation command.
func (h CreatePurchaseCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := purchase.NewPurchase(cmd.PurchaseID(), cmd.BuyerID(), cmd.LineItems(), cmd.DeliveryAddress())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PurchaseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
