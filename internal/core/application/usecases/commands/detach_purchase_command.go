package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrDetachPurchaseCommandIsNotConstructed = errors.New(
	"DetachPurchaseCommand must be created via NewDetachPurchaseCommand constructor",
)

// DetachPurchaseCommand removes a purchase from a shipment's batch. The
// purchase itself survives with its back-reference cleared.
type DetachPurchaseCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	purchaseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDetachPurchaseCommand creates a validated detach command.
func NewDetachPurchaseCommand(shipmentID, purchaseID kernel.UUID) (DetachPurchaseCommand, error) {
	if err := errors.Join(shipmentID.Validate(), purchaseID.Validate()); err != nil {
		return DetachPurchaseCommand{}, err
	}

	return DetachPurchaseCommand{
		shipmentID: shipmentID,
		purchaseID: purchaseID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DetachPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrDetachPurchaseCommandIsNotConstructed)
}

// ShipmentID returns the shipment to detach from.
func (c DetachPurchaseCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// PurchaseID returns the purchase to detach.
func (c DetachPurchaseCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}
