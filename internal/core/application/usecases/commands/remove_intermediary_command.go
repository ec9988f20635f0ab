package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrRemoveIntermediaryCommandIsNotConstructed = errors.New(
	"RemoveIntermediaryCommand must be created via NewRemoveIntermediaryCommand constructor",
)

// RemoveIntermediaryCommand removes an intermediary and cascades over the
// shipments referencing it: shipments originating there are cancelled with
// their purchases detached, shipments destined there keep running with the
// destination cleared.
type RemoveIntermediaryCommand struct { //nolint:recvcheck //using for validation
	intermediaryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveIntermediaryCommand creates a validated removal command.
func NewRemoveIntermediaryCommand(intermediaryID kernel.UUID) (RemoveIntermediaryCommand, error) {
	if err := intermediaryID.Validate(); err != nil {
		return RemoveIntermediaryCommand{}, err
	}

	return RemoveIntermediaryCommand{
		intermediaryID: intermediaryID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveIntermediaryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveIntermediaryCommandIsNotConstructed)
}

// IntermediaryID returns the intermediary to remove.
func (c RemoveIntermediaryCommand) IntermediaryID() kernel.UUID {
	return c.intermediaryID
}
