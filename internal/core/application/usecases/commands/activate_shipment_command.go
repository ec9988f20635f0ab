package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrActivateShipmentCommandIsNotConstructed = errors.New(
	"ActivateShipmentCommand must be created via NewActivateShipmentCommand constructor",
)

// ActivateShipmentCommand requests the Planned to Active transition. When the
// shipment was planned with a threshold, the attached-purchase count must have
// reached it; without one activation is purely the operator's call.
type ActivateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewActivateShipmentCommand creates a validated activation command. The actor
// is the authenticated intermediary driving the transition.
func NewActivateShipmentCommand(shipmentID, actorID kernel.UUID) (ActivateShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return ActivateShipmentCommand{}, err
	}

	return ActivateShipmentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrActivateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to activate.
func (c ActivateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c ActivateShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}
