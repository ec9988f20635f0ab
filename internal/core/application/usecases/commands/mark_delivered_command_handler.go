package commands

import (
	"context"
	"time"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// MarkDeliveredCommandHandler closes a shipment as Delivered, stamps the
// delivery time and advances ReadyForPickup purchases in the same
// transaction.
type MarkDeliveredCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkDeliveredCommandHandler creates a handler for shipment delivery.
func NewMarkDeliveredCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery command.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), &actorID,
		func(s *shipment.Shipment) error {
			return s.MarkDelivered(time.Now().UTC())
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
