package queries

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/guard"
)

var ErrGetShipmentPurchasesQueryIsNotConstructed = errors.New(
	"GetShipmentPurchasesQuery must be created via NewGetShipmentPurchasesQuery constructor",
)

// GetShipmentPurchasesQuery lists the purchases attached to one shipment.
type GetShipmentPurchasesQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentPurchasesQuery creates a validated purchase listing query.
func NewGetShipmentPurchasesQuery(shipmentID kernel.UUID) (GetShipmentPurchasesQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentPurchasesQuery{}, err
	}

	return GetShipmentPurchasesQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentPurchasesQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentPurchasesQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose purchases are listed.
func (q GetShipmentPurchasesQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentPurchasesQueryResponse is one row of the purchase listing.
type GetShipmentPurchasesQueryResponse struct {
	ID              kernel.UUID
	BuyerID         kernel.UUID
	Status          string
	TotalCents      int64
	TotalCurrency   string
	DeliveryAddress string
}
