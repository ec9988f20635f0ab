package purchase

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
)

var (
	// ErrPurchaseIsNotConstructed is returned when a Purchase instance was not
	// created through NewPurchase or RestorePurchase.
	ErrPurchaseIsNotConstructed = errors.New("Purchase must be created via NewPurchase or RestorePurchase")

	// ErrAlreadyAssigned is returned when attaching a purchase that already
	// belongs to a different shipment. The purchase must be detached first.
	ErrAlreadyAssigned = errors.New("purchase is already attached to a different shipment")

	// ErrNotAttached is returned when detaching a purchase that has no
	// shipment back-reference.
	ErrNotAttached = errors.New("purchase is not attached to a shipment")
)

// Purchase represents a buyer's order of one or more cards. It is an aggregate
// with the following invariants:
//   - belongs to at most one shipment at a time (shipmentID back-reference)
//   - status only moves along the closed chain in Status, driven by shipment
//     lifecycle events or a validated SetStatus call
//   - total equals the sum of its line item totals, fixed at construction
//
// The version field supports optimistic concurrency control at the store: a
// purchase write only succeeds against the version it was read at.
type Purchase struct {
	id              kernel.UUID
	buyerID         kernel.UUID
	total           kernel.Money
	status          Status
	lineItems       []LineItem
	deliveryAddress string
	shipmentID      *kernel.UUID
	version         int

	isConstructed bool
}

// NewPurchase creates a Purchase in Pending status. The total is computed from
// the line items, which must all share a currency and be non-empty.
func NewPurchase(
	id kernel.UUID,
	buyerID kernel.UUID,
	lineItems []LineItem,
	deliveryAddress string,
) (*Purchase, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate()); err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return nil, errors.New("purchase requires at least one line item")
	}

	total, err := sumLineItems(lineItems)
	if err != nil {
		return nil, err
	}

	return &Purchase{
		id:              id,
		buyerID:         buyerID,
		total:           total,
		status:          Pending,
		lineItems:       lineItems,
		deliveryAddress: deliveryAddress,
		isConstructed:   true,
	}, nil
}

// RestorePurchase reconstructs a Purchase from persistence, trusting the
// stored total and status after validating them.
func RestorePurchase(
	id kernel.UUID,
	buyerID kernel.UUID,
	total kernel.Money,
	status Status,
	lineItems []LineItem,
	deliveryAddress string,
	shipmentID *kernel.UUID,
	version int,
) (*Purchase, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate(), total.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Purchase{
		id:              id,
		buyerID:         buyerID,
		total:           total,
		status:          status,
		lineItems:       lineItems,
		deliveryAddress: deliveryAddress,
		shipmentID:      shipmentID,
		version:         version,
		isConstructed:   true,
	}, nil
}

func sumLineItems(items []LineItem) (kernel.Money, error) {
	var total kernel.Money
	for i, item := range items {
		itemTotal, err := item.Total()
		if err != nil {
			return kernel.Money{}, err
		}
		if i == 0 {
			total = itemTotal
			continue
		}
		total, err = total.Add(itemTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// Validate ensures the Purchase was created via a constructor.
func (p *Purchase) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPurchaseIsNotConstructed
	}
	return nil
}

// IsEqual compares two purchases by identity.
func (p *Purchase) IsEqual(other *Purchase) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the purchase identifier.
func (p *Purchase) ID() kernel.UUID {
	return p.id
}

// BuyerID returns the buying user's identifier.
func (p *Purchase) BuyerID() kernel.UUID {
	return p.buyerID
}

// Total returns the purchase total.
func (p *Purchase) Total() kernel.Money {
	return p.total
}

// Status returns the current delivery status.
func (p *Purchase) Status() Status {
	return p.status
}

// LineItems returns the card positions of the purchase.
func (p *Purchase) LineItems() []LineItem {
	return p.lineItems
}

// DeliveryAddress returns the optional delivery address. Empty means the buyer
// collects at the destination intermediary.
func (p *Purchase) DeliveryAddress() string {
	return p.deliveryAddress
}

// Shipment returns the owning shipment's ID, or nil when unattached.
func (p *Purchase) Shipment() *kernel.UUID {
	return p.shipmentID
}

// Version returns the optimistic-lock revision the purchase was read at.
func (p *Purchase) Version() int {
	return p.version
}

// AttachTo sets the shipment back-reference. Attaching to the shipment the
// purchase already belongs to is a no-op; attaching while it belongs to a
// different shipment fails with ErrAlreadyAssigned.
func (p *Purchase) AttachTo(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if p.shipmentID != nil {
		if p.shipmentID.IsEqual(shipmentID) {
			return nil
		}
		return ErrAlreadyAssigned
	}

	p.shipmentID = &shipmentID
	return nil
}

// Detach clears the shipment back-reference. The purchase itself survives.
func (p *Purchase) Detach() error {
	if p.shipmentID == nil {
		return ErrNotAttached
	}
	p.shipmentID = nil
	return nil
}

// SetStatus moves the purchase to next, enforcing enum membership and the
// adjacency chain. This is the only mutation path for the status field.
func (p *Purchase) SetStatus(next Status) error {
	newStatus, err := p.status.AdvanceTo(next)
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}
