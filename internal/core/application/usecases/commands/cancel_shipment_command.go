package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand aborts a shipment from any non-terminal status. Fails
// while purchases remain attached; they must be detached or reassigned first.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a validated cancellation command.
func NewCancelShipmentCommand(shipmentID, actorID kernel.UUID) (CancelShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return CancelShipmentCommand{}, err
	}

	return CancelShipmentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to cancel.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c CancelShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}
