package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/shipment"
)

// PlanShipmentCommandHandler handles the business logic for shipment planning.
// Creates the aggregate in Planned status with no attached purchases.
type PlanShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewPlanShipmentCommandHandler creates a handler for shipment planning.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewPlanShipmentCommandHandler(uowFactory ShipmentUoWFactory) PlanShipmentCommandHandler {
	return PlanShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plan shipment command.
// Builds the aggregate and persists it inside a transaction.
func (h PlanShipmentCommandHandler) Handle(ctx context.Context, cmd PlanShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.OriginIntermediaryID(),
		cmd.DestinationIntermediaryID(),
		cmd.MinPurchaseThreshold(),
		cmd.PricePerPurchase(),
		cmd.ScheduledDispatchDate(),
	)
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

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
