package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrAttachPurchaseCommandIsNotConstructed = errors.New(
	"AttachPurchaseCommand must be created via NewAttachPurchaseCommand constructor",
)

// AttachPurchaseCommand adds a purchase to a shipment's batch. Attaching a
// purchase already on a different shipment fails with
// purchase.ErrAlreadyAssigned; re-attaching to the same shipment is a no-op.
type AttachPurchaseCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	purchaseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachPurchaseCommand creates a validated attach command.
func NewAttachPurchaseCommand(shipmentID, purchaseID kernel.UUID) (AttachPurchaseCommand, error) {
	if err := errors.Join(shipmentID.Validate(), purchaseID.Validate()); err != nil {
		return AttachPurchaseCommand{}, err
	}

	return AttachPurchaseCommand{
		shipmentID: shipmentID,
		purchaseID: purchaseID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrAttachPurchaseCommandIsNotConstructed)
}

// ShipmentID returns the receiving shipment.
func (c AttachPurchaseCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// PurchaseID returns the purchase to attach.
func (c AttachPurchaseCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}
