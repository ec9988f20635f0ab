package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// CancelShipmentCommandHandler aborts a shipment. The attached-purchases
// guard lives in the aggregate and surfaces as
// shipment.ErrHasAttachedPurchases.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), &actorID,
		func(s *shipment.Shipment) error {
			return s.Cancel()
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
