package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrMarkSellerSentCommandIsNotConstructed = errors.New(
	"MarkSellerSentCommand must be created via NewMarkSellerSentCommand constructor",
)

// MarkSellerSentCommand records that sellers handed their purchases to the
// origin intermediary. Legal from any pre-dispatch status; Pending purchases
// advance to InOriginIntermediaryHands.
type MarkSellerSentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkSellerSentCommand creates a validated seller-sent command.
func NewMarkSellerSentCommand(shipmentID kernel.UUID) (MarkSellerSentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return MarkSellerSentCommand{}, err
	}

	return MarkSellerSentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkSellerSentCommand) Validate() error {
	return c.guard.Validate(ErrMarkSellerSentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to mark.
func (c MarkSellerSentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
