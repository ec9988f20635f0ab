package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrGenerateOrderCommandIsNotConstructed = errors.New(
	"GenerateOrderCommand must be created via NewGenerateOrderCommand constructor",
)

// GenerateOrderCommand requests generation of the consolidated shipping order:
// Planned/Active to OrderGenerated.
type GenerateOrderCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateOrderCommand creates a validated order generation command.
func NewGenerateOrderCommand(shipmentID, actorID kernel.UUID) (GenerateOrderCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return GenerateOrderCommand{}, err
	}

	return GenerateOrderCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateOrderCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOrderCommandIsNotConstructed)
}

// ShipmentID returns the shipment to generate the order for.
func (c GenerateOrderCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c GenerateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}
