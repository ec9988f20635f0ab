package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// ActivateShipmentCommandHandler moves a shipment from Planned to Active and
// publishes the status change after commit.
type ActivateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewActivateShipmentCommandHandler creates a handler for shipment activation.
func NewActivateShipmentCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) ActivateShipmentCommandHandler {
	return ActivateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the activation command. The threshold gate lives inside
// the aggregate; a failed gate surfaces as shipment.ErrInvalidTransition.
func (h ActivateShipmentCommandHandler) Handle(ctx context.Context, cmd ActivateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), &actorID,
		func(s *shipment.Shipment) error {
			return s.Activate()
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
