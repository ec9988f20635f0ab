package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/pkg/guard"
)

var ErrSetPurchaseStatusCommandIsNotConstructed = errors.New(
	"SetPurchaseStatusCommand must be created via NewSetPurchaseStatusCommand constructor",
)

// SetPurchaseStatusCommand moves a purchase's delivery status by hand.
// The target status must be a member of the closed enum and adjacent to the
// current one; arbitrary client strings are rejected at construction.
type SetPurchaseStatusCommand struct { //nolint:recvcheck //using for validation
	purchaseID kernel.UUID
	status     purchase.Status

	guard guard.ConstructorGuard
}

// NewSetPurchaseStatusCommand creates a validated status update command from
// the raw status string.
func NewSetPurchaseStatusCommand(purchaseID kernel.UUID, rawStatus string) (SetPurchaseStatusCommand, error) {
	if err := purchaseID.Validate(); err != nil {
		return SetPurchaseStatusCommand{}, err
	}

	status, err := purchase.StatusFromString(rawStatus)
	if err != nil {
		return SetPurchaseStatusCommand{}, err
	}

	return SetPurchaseStatusCommand{
		purchaseID: purchaseID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPurchaseStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPurchaseStatusCommandIsNotConstructed)
}

// PurchaseID returns the purchase to update.
func (c SetPurchaseStatusCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// Status returns the parsed target status.
func (c SetPurchaseStatusCommand) Status() purchase.Status {
	return c.status
}
