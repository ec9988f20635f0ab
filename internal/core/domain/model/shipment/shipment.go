package shipment

import (
	"errors"
	"fmt"
	"time"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrHasAttachedPurchases blocks cancel and delete while purchases remain
	// attached. Detach or reassign them first.
	ErrHasAttachedPurchases = errors.New("shipment has attached purchases")
)

// Shipment is the aggregate root of the logistics workflow: a consolidated
// batch moving from an origin intermediary towards an optional destination
// intermediary, carrying the purchases attached to it.
//
// Shipment enforces these invariants:
//   - status only moves along the adjacency table in Status
//   - every lifecycle event applies its purchase-status cascade in the same
//     mutation, so shipment and purchase states never drift apart
//   - a purchase attaches to at most one shipment (back-reference symmetry is
//     kept by mutating both sides here)
//   - cancel and delete require an empty purchase collection
//
// The version field supports optimistic concurrency: the store only accepts a
// write against the version the aggregate was read at, so two racing events on
// the same shipment resolve to exactly one winner.
type Shipment struct {
	id                        kernel.UUID
	status                    Status
	originIntermediaryID      kernel.UUID
	destinationIntermediaryID *kernel.UUID
	minPurchaseThreshold      *int
	pricePerPurchase          *kernel.Money
	scheduledDispatchDate     *time.Time
	deliveredDate             *time.Time
	notes                     string
	purchases                 []*purchase.Purchase
	version                   int

	isConstructed bool
}

// NewShipment creates a Shipment in Planned status with no attached purchases.
// Origin is required; destination, threshold, price and scheduled date are
// optional route parameters fixed at planning time.
func NewShipment(
	id kernel.UUID,
	originIntermediaryID kernel.UUID,
	destinationIntermediaryID *kernel.UUID,
	minPurchaseThreshold *int,
	pricePerPurchase *kernel.Money,
	scheduledDispatchDate *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrigin(originIntermediaryID),
		s.setDestination(destinationIntermediaryID),
		s.setThreshold(minPurchaseThreshold),
		s.setPrice(pricePerPurchase),
	); err != nil {
		return nil, err
	}

	s.scheduledDispatchDate = scheduledDispatchDate
	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including its
// loaded purchase collection and optimistic-lock version.
func RestoreShipment(
	id kernel.UUID,
	status Status,
	originIntermediaryID kernel.UUID,
	destinationIntermediaryID *kernel.UUID,
	minPurchaseThreshold *int,
	pricePerPurchase *kernel.Money,
	scheduledDispatchDate *time.Time,
	deliveredDate *time.Time,
	notes string,
	purchases []*purchase.Purchase,
	version int,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		status.Validate(),
		s.setID(id),
		s.setOrigin(originIntermediaryID),
		s.setDestination(destinationIntermediaryID),
		s.setThreshold(minPurchaseThreshold),
		s.setPrice(pricePerPurchase),
	); err != nil {
		return nil, err
	}

	s.status = status
	s.scheduledDispatchDate = scheduledDispatchDate
	s.deliveredDate = deliveredDate
	s.notes = notes
	s.purchases = purchases
	s.version = version
	return s, nil
}

// Validate ensures the Shipment was created via a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// OriginIntermediary returns the collection-point intermediary's ID.
func (s *Shipment) OriginIntermediary() kernel.UUID {
	return s.originIntermediaryID
}

// DestinationIntermediary returns the optional destination intermediary's ID.
func (s *Shipment) DestinationIntermediary() *kernel.UUID {
	return s.destinationIntermediaryID
}

// MinPurchaseThreshold returns the optional activation threshold.
func (s *Shipment) MinPurchaseThreshold() *int {
	return s.minPurchaseThreshold
}

// PricePerPurchase returns the optional per-purchase fee.
func (s *Shipment) PricePerPurchase() *kernel.Money {
	return s.pricePerPurchase
}

// ScheduledDispatchDate returns the optional planned dispatch date.
func (s *Shipment) ScheduledDispatchDate() *time.Time {
	return s.scheduledDispatchDate
}

// DeliveredDate returns the delivery timestamp, set on the terminal events.
func (s *Shipment) DeliveredDate() *time.Time {
	return s.deliveredDate
}

// Notes returns the free-text notes.
func (s *Shipment) Notes() string {
	return s.notes
}

// Purchases returns the attached purchase collection.
func (s *Shipment) Purchases() []*purchase.Purchase {
	return s.purchases
}

// PurchaseCount returns the number of attached purchases.
func (s *Shipment) PurchaseCount() int {
	return len(s.purchases)
}

// Version returns the optimistic-lock revision the shipment was read at.
func (s *Shipment) Version() int {
	return s.version
}

// IsOwnedBy reports whether the given intermediary is the shipment's origin,
// i.e. the actor allowed to drive its lifecycle.
func (s *Shipment) IsOwnedBy(intermediaryID kernel.UUID) bool {
	return s.originIntermediaryID.IsEqual(intermediaryID)
}

// Activate moves the shipment from Planned to Active. When a threshold was set
// at planning time the attached-purchase count must have reached it; without a
// threshold activation is purely an operator decision.
func (s *Shipment) Activate() error {
	if s.minPurchaseThreshold != nil && len(s.purchases) < *s.minPurchaseThreshold {
		return fmt.Errorf("%w: %d of %d purchases attached",
			ErrInvalidTransition, len(s.purchases), *s.minPurchaseThreshold)
	}

	return s.transitionTo(Active)
}

// GenerateOrder produces the consolidated shipping order:
// Planned/Active -> OrderGenerated.
func (s *Shipment) GenerateOrder() error {
	return s.transitionTo(OrderGenerated)
}

// MarkSellerSent records that sellers handed their purchases to the origin
// intermediary. Legal from any pre-dispatch status. Attached purchases still
// Pending advance to InOriginIntermediaryHands; others are left untouched.
func (s *Shipment) MarkSellerSent() error {
	if err := s.transitionTo(SellerSent); err != nil {
		return err
	}

	return s.advancePurchases(purchase.Pending, purchase.InOriginIntermediaryHands)
}

// Dispatch sends the batch towards the destination:
// SellerSent -> IntermediaryDispatched. Purchases in the origin intermediary's
// hands advance to InTransitToDestination. Notes, when given, are appended to
// the shipment's free text.
func (s *Shipment) Dispatch(notes string) error {
	if err := s.transitionTo(IntermediaryDispatched); err != nil {
		return err
	}

	if notes != "" {
		s.appendNotes(notes)
	}

	return s.advancePurchases(purchase.InOriginIntermediaryHands, purchase.InTransitToDestination)
}

// Receive records arrival at the destination intermediary:
// IntermediaryDispatched -> IntermediaryReceived. In-transit purchases advance
// to ReadyForPickup.
func (s *Shipment) Receive() error {
	if err := s.transitionTo(IntermediaryReceived); err != nil {
		return err
	}

	return s.advancePurchases(purchase.InTransitToDestination, purchase.ReadyForPickup)
}

// MarkDelivered closes the shipment as Delivered and stamps the delivery
// time. ReadyForPickup purchases advance to Delivered.
func (s *Shipment) MarkDelivered(at time.Time) error {
	if err := s.transitionTo(Delivered); err != nil {
		return err
	}

	s.deliveredDate = &at
	return s.advancePurchases(purchase.ReadyForPickup, purchase.Delivered)
}

// MarkWithdrawn closes the shipment as Withdrawn: buyers collected the batch
// at the intermediary. Purchase-wise the outcome equals delivery, so
// ReadyForPickup purchases advance to Delivered.
func (s *Shipment) MarkWithdrawn(at time.Time) error {
	if err := s.transitionTo(Withdrawn); err != nil {
		return err
	}

	s.deliveredDate = &at
	return s.advancePurchases(purchase.ReadyForPickup, purchase.Delivered)
}

// Cancel aborts the shipment. Fails with ErrHasAttachedPurchases while
// purchases remain attached; detach or reassign them first.
func (s *Shipment) Cancel() error {
	if len(s.purchases) > 0 {
		return ErrHasAttachedPurchases
	}

	return s.transitionTo(Cancelled)
}

// CancelDetachingPurchases aborts the shipment as part of an intermediary
// removal cascade: all purchases are detached (not deleted) and then the
// shipment is cancelled regardless of its prior non-terminal status.
// The detached purchases are returned so the caller can persist them.
func (s *Shipment) CancelDetachingPurchases() ([]*purchase.Purchase, error) {
	if s.status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.status, Cancelled)
	}

	detached := s.purchases
	for _, p := range detached {
		if err := p.Detach(); err != nil {
			return nil, err
		}
	}
	s.purchases = nil

	if err := s.transitionTo(Cancelled); err != nil {
		return nil, err
	}
	return detached, nil
}

// ClearDestination removes the destination intermediary reference. The
// shipment keeps running, now destination-less, in whatever status it was.
func (s *Shipment) ClearDestination() {
	s.destinationIntermediaryID = nil
}

// UpdateDetails mutates the side-channel fields (notes, scheduled dispatch
// date) without moving the state machine. Allowed in any non-terminal status.
func (s *Shipment) UpdateDetails(notes *string, scheduledDispatchDate *time.Time) error {
	if s.status.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, s.status)
	}

	if notes != nil {
		s.notes = *notes
	}
	if scheduledDispatchDate != nil {
		s.scheduledDispatchDate = scheduledDispatchDate
	}
	return nil
}

// CanBeDeleted reports whether the shipment may be removed from the store.
func (s *Shipment) CanBeDeleted() bool {
	return len(s.purchases) == 0
}

// AttachPurchase adds a purchase to the batch, keeping both sides of the
// back-reference consistent. Attach is only legal while the batch has not
// left the origin (pre-dispatch statuses); a purchase already attached to a
// different shipment fails with purchase.ErrAlreadyAssigned, and re-attaching
// the same purchase is a no-op.
func (s *Shipment) AttachPurchase(p *purchase.Purchase) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !s.status.IsPreDispatch() {
		return fmt.Errorf("%w: cannot attach purchases in %s", ErrInvalidTransition, s.status)
	}

	alreadyAttached := p.Shipment() != nil && p.Shipment().IsEqual(s.id)
	if err := p.AttachTo(s.id); err != nil {
		return err
	}
	if alreadyAttached {
		return nil
	}

	s.purchases = append(s.purchases, p)
	return nil
}

// DetachPurchase removes a purchase from the batch and clears its
// back-reference. The purchase itself survives.
func (s *Shipment) DetachPurchase(purchaseID kernel.UUID) (*purchase.Purchase, error) {
	if err := purchaseID.Validate(); err != nil {
		return nil, err
	}

	for i, p := range s.purchases {
		if p.ID().IsEqual(purchaseID) {
			if err := p.Detach(); err != nil {
				return nil, err
			}
			s.purchases = append(s.purchases[:i], s.purchases[i+1:]...)
			return p, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("purchase", purchaseID.String())
}

func (s *Shipment) transitionTo(next Status) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// advancePurchases applies one cascade step: every attached purchase currently
// in from moves to to; purchases in any other status are deliberately left
// untouched.
func (s *Shipment) advancePurchases(from, to purchase.Status) error {
	for _, p := range s.purchases {
		if p.Status() != from {
			continue
		}
		if err := p.SetStatus(to); err != nil {
			return err
		}
	}
	return nil
}

func (s *Shipment) appendNotes(notes string) {
	if s.notes == "" {
		s.notes = notes
		return
	}
	s.notes = s.notes + "\n" + notes
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrigin(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("originIntermediary", err)
	}
	s.originIntermediaryID = id
	return nil
}

func (s *Shipment) setDestination(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destinationIntermediary", err)
	}
	s.destinationIntermediaryID = id
	return nil
}

func (s *Shipment) setThreshold(threshold *int) error {
	if threshold == nil {
		return nil
	}
	if *threshold <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("minPurchaseThreshold",
			fmt.Errorf("%d is not greater than 0", *threshold))
	}
	s.minPurchaseThreshold = threshold
	return nil
}

func (s *Shipment) setPrice(price *kernel.Money) error {
	if price == nil {
		return nil
	}
	if err := price.Validate(); err != nil {
		return err
	}
	s.pricePerPurchase = price
	return nil
}
