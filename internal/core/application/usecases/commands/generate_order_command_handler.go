package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// GenerateOrderCommandHandler produces the consolidated shipping order for a
// shipment and publishes the status change after commit.
type GenerateOrderCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewGenerateOrderCommandHandler creates a handler for order generation.
func NewGenerateOrderCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) GenerateOrderCommandHandler {
	return GenerateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the generate order command.
func (h GenerateOrderCommandHandler) Handle(ctx context.Context, cmd GenerateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), &actorID,
		func(s *shipment.Shipment) error {
			return s.GenerateOrder()
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
