package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrDispatchShipmentCommandIsNotConstructed = errors.New(
	"DispatchShipmentCommand must be created via NewDispatchShipmentCommand constructor",
)

// DispatchShipmentCommand sends the batch towards the destination:
// SellerSent to IntermediaryDispatched. Optional notes are appended to the
// shipment's free text.
type DispatchShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID
	notes      string

	guard guard.ConstructorGuard
}

// NewDispatchShipmentCommand creates a validated dispatch command.
func NewDispatchShipmentCommand(shipmentID, actorID kernel.UUID, notes string) (DispatchShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return DispatchShipmentCommand{}, err
	}

	return DispatchShipmentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDispatchShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to dispatch.
func (c DispatchShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c DispatchShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the optional dispatch notes.
func (c DispatchShipmentCommand) Notes() string {
	return c.notes
}
