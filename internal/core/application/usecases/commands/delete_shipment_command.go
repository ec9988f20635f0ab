package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand removes a shipment from the store. Only shipments
// with no attached purchases can be deleted.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a validated deletion command.
func NewDeleteShipmentCommand(shipmentID, actorID kernel.UUID) (DeleteShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to delete.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c DeleteShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}
