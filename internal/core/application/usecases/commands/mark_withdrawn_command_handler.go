package commands

import (
	"context"
	"time"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// MarkWithdrawnCommandHandler closes a shipment as Withdrawn. Purchase-wise
// the outcome equals delivery, so ReadyForPickup purchases advance to
// Delivered in the same transaction.
type MarkWithdrawnCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkWithdrawnCommandHandler creates a handler for shipment withdrawal.
func NewMarkWithdrawnCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) MarkWithdrawnCommandHandler {
	return MarkWithdrawnCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the withdrawal command.
func (h MarkWithdrawnCommandHandler) Handle(ctx context.Context, cmd MarkWithdrawnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), &actorID,
		func(s *shipment.Shipment) error {
			return s.MarkWithdrawn(time.Now().UTC())
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
