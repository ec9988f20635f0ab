package commands

import (
	"errors"
	"time"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/errs"
	"cardmarket/internal/pkg/guard"
)

var ErrPlanShipmentCommandIsNotConstructed = errors.New(
	"PlanShipmentCommand must be created via NewPlanShipmentCommand constructor",
)

// PlanShipmentCommand represents a request to open a new shipment in Planned
// status. The acting intermediary becomes the shipment's origin; destination,
// threshold, price and scheduled dispatch date are optional route parameters.
//
// Example:
//
//	cmd, err := NewPlanShipmentCommand(kernel.NewUUID(), actorID, &destID, &threshold, &price, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type PlanShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID                kernel.UUID
	originIntermediaryID      kernel.UUID
	destinationIntermediaryID *kernel.UUID
	minPurchaseThreshold      *int
	pricePerPurchase          *kernel.Money
	scheduledDispatchDate     *time.Time

	guard guard.ConstructorGuard
}

// NewPlanShipmentCommand creates a validated command to plan a shipment.
func NewPlanShipmentCommand(
	shipmentID kernel.UUID,
	originIntermediaryID kernel.UUID,
	destinationIntermediaryID *kernel.UUID,
	minPurchaseThreshold *int,
	pricePerPurchase *kernel.Money,
	scheduledDispatchDate *time.Time,
) (PlanShipmentCommand, error) {
	cmd := PlanShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOrigin(originIntermediaryID),
		cmd.setDestination(destinationIntermediaryID),
		cmd.setThreshold(minPurchaseThreshold),
	); err != nil {
		return PlanShipmentCommand{}, err
	}

	cmd.pricePerPurchase = pricePerPurchase
	cmd.scheduledDispatchDate = scheduledDispatchDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanShipmentCommand) Validate() error {
	return c.guard.Validate(ErrPlanShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to create.
func (c PlanShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OriginIntermediaryID returns the acting intermediary, the shipment's origin.
func (c PlanShipmentCommand) OriginIntermediaryID() kernel.UUID {
	return c.originIntermediaryID
}

// DestinationIntermediaryID returns the optional destination intermediary.
func (c PlanShipmentCommand) DestinationIntermediaryID() *kernel.UUID {
	return c.destinationIntermediaryID
}

// MinPurchaseThreshold returns the optional activation threshold.
func (c PlanShipmentCommand) MinPurchaseThreshold() *int {
	return c.minPurchaseThreshold
}

// PricePerPurchase returns the optional per-purchase fee.
func (c PlanShipmentCommand) PricePerPurchase() *kernel.Money {
	return c.pricePerPurchase
}

// ScheduledDispatchDate returns the optional planned dispatch date.
func (c PlanShipmentCommand) ScheduledDispatchDate() *time.Time {
	return c.scheduledDispatchDate
}

func (c *PlanShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *PlanShipmentCommand) setOrigin(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("originIntermediaryID", err)
	}
	c.originIntermediaryID = id
	return nil
}

func (c *PlanShipmentCommand) setDestination(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destinationIntermediaryID", err)
	}
	c.destinationIntermediaryID = id
	return nil
}

func (c *PlanShipmentCommand) setThreshold(threshold *int) error {
	if threshold == nil {
		return nil
	}
	if *threshold <= 0 {
		return errs.NewValueIsInvalidError("minPurchaseThreshold")
	}
	c.minPurchaseThreshold = threshold
	return nil
}
