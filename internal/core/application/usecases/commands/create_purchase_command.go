package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/pkg/errs"
	"cardmarket/internal/pkg/guard"
)

var ErrCreatePurchaseCommandIsNotConstructed = errors.New(
	"CreatePurchaseCommand must be created via NewCreatePurchaseCommand constructor",
)

// CreatePurchaseCommand registers a buyer's checkout as a purchase in Pending
// status. Line items are validated snapshots of the checkout cart.
type CreatePurchaseCommand struct { //nolint:recvcheck //using for validation
	purchaseID      kernel.UUID
	buyerID         kernel.UUID
	lineItems       []purchase.LineItem
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreatePurchaseCommand creates a validated purchase creation command.
func NewCreatePurchaseCommand(
	purchaseID kernel.UUID,
	buyerID kernel.UUID,
	lineItems []purchase.LineItem,
	deliveryAddress string,
) (CreatePurchaseCommand, error) {
	if err := errors.Join(purchaseID.Validate(), buyerID.Validate()); err != nil {
		return CreatePurchaseCommand{}, err
	}
	if len(lineItems) == 0 {
		return CreatePurchaseCommand{}, errs.NewValueIsRequiredError("lineItems")
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return CreatePurchaseCommand{}, err
		}
	}

	return CreatePurchaseCommand{
		purchaseID:      purchaseID,
		buyerID:         buyerID,
		lineItems:       lineItems,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseCommandIsNotConstructed)
}

// PurchaseID returns the identifier of the purchase to create.
func (c CreatePurchaseCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// BuyerID returns the buying user.
func (c CreatePurchaseCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// LineItems returns the checkout cart snapshot.
func (c CreatePurchaseCommand) LineItems() []purchase.LineItem {
	return c.lineItems
}

// DeliveryAddress returns the optional delivery address.
func (c CreatePurchaseCommand) DeliveryAddress() string {
	return c.deliveryAddress
}
