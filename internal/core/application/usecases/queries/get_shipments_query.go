// Package queries contains read-only operations over the store. Query
// handlers bypass the aggregates and read projections with raw SQL, the read
// side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/errs"
	"cardmarket/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// ShipmentRole filters the shipment listing by how the intermediary relates
// to the shipment.
type ShipmentRole string

const (
	// RoleOrigin lists shipments the intermediary collects and dispatches.
	RoleOrigin ShipmentRole = "origin"
	// RoleDestination lists shipments the intermediary receives.
	RoleDestination ShipmentRole = "destination"
	// RoleEither lists both.
	RoleEither ShipmentRole = "either"
)

// GetShipmentsQuery lists the shipments an intermediary participates in,
// with their current status and attached-purchase count.
type GetShipmentsQuery struct {
	intermediaryID kernel.UUID
	role           ShipmentRole

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a validated shipment listing query.
func NewGetShipmentsQuery(intermediaryID kernel.UUID, role ShipmentRole) (GetShipmentsQuery, error) {
	if err := intermediaryID.Validate(); err != nil {
		return GetShipmentsQuery{}, err
	}

	switch role {
	case RoleOrigin, RoleDestination, RoleEither:
	default:
		return GetShipmentsQuery{}, errs.NewValueIsInvalidError("role")
	}

	return GetShipmentsQuery{
		intermediaryID: intermediaryID,
		role:           role,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// IntermediaryID returns the intermediary the listing is scoped to.
func (q GetShipmentsQuery) IntermediaryID() kernel.UUID {
	return q.intermediaryID
}

// Role returns the relation filter.
func (q GetShipmentsQuery) Role() ShipmentRole {
	return q.role
}

// GetShipmentsQueryResponse is one row of the shipment listing read model.
type GetShipmentsQueryResponse struct {
	ID                        kernel.UUID
	Status                    string
	OriginIntermediaryID      kernel.UUID
	DestinationIntermediaryID *kernel.UUID
	MinPurchaseThreshold      *int
	ScheduledDispatchDate     *time.Time
	PurchaseCount             int
}
