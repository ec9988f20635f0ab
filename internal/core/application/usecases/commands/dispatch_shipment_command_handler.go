package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// DispatchShipmentCommandHandler dispatches a shipment and advances its
// purchases to InTransitToDestination in the same transaction.
type DispatchShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchShipmentCommandHandler creates a handler for shipment dispatch.
func NewDispatchShipmentCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) DispatchShipmentCommandHandler {
	return DispatchShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch command.
func (h DispatchShipmentCommandHandler) Handle(ctx context.Context, cmd DispatchShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), &actorID,
		func(s *shipment.Shipment) error {
			return s.Dispatch(cmd.Notes())
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
