package commands

import (
	"errors"
	"time"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrUpdateShipmentDetailsCommandIsNotConstructed = errors.New(
	"UpdateShipmentDetailsCommand must be created via NewUpdateShipmentDetailsCommand constructor",
)

// UpdateShipmentDetailsCommand edits the side-channel fields of a shipment
// (notes, scheduled dispatch date) without moving the state machine. Nil
// fields are left unchanged.
type UpdateShipmentDetailsCommand struct { //nolint:recvcheck //using for validation
	shipmentID            kernel.UUID
	actorID               kernel.UUID
	notes                 *string
	scheduledDispatchDate *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateShipmentDetailsCommand creates a validated details update command.
func NewUpdateShipmentDetailsCommand(
	shipmentID, actorID kernel.UUID,
	notes *string,
	scheduledDispatchDate *time.Time,
) (UpdateShipmentDetailsCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return UpdateShipmentDetailsCommand{}, err
	}

	return UpdateShipmentDetailsCommand{
		shipmentID:            shipmentID,
		actorID:               actorID,
		notes:                 notes,
		scheduledDispatchDate: scheduledDispatchDate,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentDetailsCommandIsNotConstructed)
}

// ShipmentID returns the shipment to update.
func (c UpdateShipmentDetailsCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting intermediary.
func (c UpdateShipmentDetailsCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the replacement notes, or nil to keep the current value.
func (c UpdateShipmentDetailsCommand) Notes() *string {
	return c.notes
}

// ScheduledDispatchDate returns the replacement date, or nil to keep the
// current value.
func (c UpdateShipmentDetailsCommand) ScheduledDispatchDate() *time.Time {
	return c.scheduledDispatchDate
}
