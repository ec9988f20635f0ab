package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrMarkWithdrawnCommandIsNotConstructed = errors.New(
	"MarkWithdrawnCommand must be created via NewMarkWithdrawnCommand constructor",
)

// MarkWithdrawnCommand closes a shipment as Withdrawn: buyers collected the
// batch at the destination intermediary instead of a final delivery leg.
type MarkWithdrawnCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkWithdrawnCommand creates a validated withdrawal command.
func NewMarkWithdrawnCommand(shipmentID, actorID kernel.UUID) (MarkWithdrawnCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return MarkWithdrawnCommand{}, err
	}

	return MarkWithdrawnCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkWithdrawnCommand) Validate() error {
	return c.guard.Validate(ErrMarkWithdrawnCommandIsNotConstructed)
}

// ShipmentID returns the shipment to close.
func (c MarkWithdrawnCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c MarkWithdrawnCommand) ActorID() kernel.UUID {
	return c.actorID
}
