package purchase

import (
	"fmt"

	"cardmarket/internal/pkg/errs"
)

// Status represents the delivery state of a purchase as seen by the buyer.
// It is a closed enum: values outside the set below are rejected, and moves
// between values are only legal along the chain
//
//	Pending -> InOriginIntermediaryHands -> InTransitToDestination
//	        -> ReadyForPickup -> Delivered
//
// Statuses advance when the owning shipment fires a lifecycle event; direct
// writes go through SetStatus which enforces the same adjacency.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a purchase: paid for, waiting for the
	// seller to hand it to the origin intermediary.
	Pending

	// InOriginIntermediaryHands means the seller dropped the purchase at the
	// origin intermediary's collection point.
	InOriginIntermediaryHands

	// InTransitToDestination means the purchase travels inside a dispatched
	// shipment towards the destination intermediary.
	InTransitToDestination

	// ReadyForPickup means the destination intermediary received the shipment
	// and the buyer can collect the purchase.
	ReadyForPickup

	// Delivered is the final status: the buyer has the purchase.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                   "Unknown",
		Pending:                   "Pending",
		InOriginIntermediaryHands: "InOriginIntermediaryHands",
		InTransitToDestination:    "InTransitToDestination",
		ReadyForPickup:            "ReadyForPickup",
		Delivered:                 "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:                   "Pending",
		InOriginIntermediaryHands: "InOriginIntermediaryHands",
		InTransitToDestination:    "InTransitToDestination",
		ReadyForPickup:            "ReadyForPickup",
		Delivered:                 "Delivered",
	}
}

// StatusFromString parses a status name into its enum value. Only members of
// the closed set are accepted; anything else fails with a validation error.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a purchase status", s))
}

// Validate checks if the Status value is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanAdvanceTo reports whether moving from s to next is a legal step.
// The chain is strictly linear: each status may only advance to its
// immediate successor.
func (s Status) CanAdvanceTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	return next == s+1
}

// AdvanceTo transitions the status to next.
// Returns the new status, or an error when next is not the immediate
// successor of s.
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanAdvanceTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot advance to %s", s, next),
		)
	}
	return next, nil
}

// IsTerminal reports whether the status admits no further moves.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
