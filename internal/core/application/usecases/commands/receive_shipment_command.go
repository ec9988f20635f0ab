package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrReceiveShipmentCommandIsNotConstructed = errors.New(
	"ReceiveShipmentCommand must be created via NewReceiveShipmentCommand constructor",
)

// ReceiveShipmentCommand records arrival at the destination intermediary:
// IntermediaryDispatched to IntermediaryReceived.
type ReceiveShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveShipmentCommand creates a validated receive command.
func NewReceiveShipmentCommand(shipmentID, actorID kernel.UUID) (ReceiveShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return ReceiveShipmentCommand{}, err
	}

	return ReceiveShipmentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReceiveShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being received.
func (c ReceiveShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c ReceiveShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}
