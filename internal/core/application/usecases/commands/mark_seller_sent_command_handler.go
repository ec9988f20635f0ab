package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

// MarkSellerSentCommandHandler records seller hand-over and applies the
// Pending to InOriginIntermediaryHands purchase cascade in the same
// transaction.
type MarkSellerSentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkSellerSentCommandHandler creates a handler for seller hand-over.
func NewMarkSellerSentCommandHandler(uowFactory ShipmentUoWFactory, publisher ports.EventPublisher) MarkSellerSentCommandHandler {
	return MarkSellerSentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the seller-sent command.
func (h MarkSellerSentCommandHandler) Handle(ctx context.Context, cmd MarkSellerSentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := transitionShipment(ctx, h.uowFactory, cmd.ShipmentID(), nil,
		func(s *shipment.Shipment) error {
			return s.MarkSellerSent()
		})
	if err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, event)
	return nil
}
