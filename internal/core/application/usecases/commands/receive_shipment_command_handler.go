package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// ReceiveShipmentCommandHandler records arrival at the destination and
// advances in-transit purchases to ReadyForPickup in the same transaction.
type ReceiveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewReceiveShipmentCommandHandler creates a handler for shipment reception.
func NewReceiveShipmentCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) ReceiveShipmentCommandHandler {
	return ReceiveShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the receive command.
func (h ReceiveShipmentCommandHandler) Handle(ctx context.Context, cmd ReceiveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), &actorID,
		func(s *shipment.Shipment) error {
			return s.Receive()
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
