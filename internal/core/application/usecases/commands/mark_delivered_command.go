package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand closes a shipment as Delivered. ReadyForPickup
// purchases advance to Delivered.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a validated delivery command.
func NewMarkDeliveredCommand(shipmentID, actorID kernel.UUID) (MarkDeliveredCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// ShipmentID returns the shipment to close.
func (c MarkDeliveredCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c MarkDeliveredCommand) ActorID() kernel.UUID {
	return c.actorID
}
