package shipment

import (
	"errors"
	"fmt"

	"cardmarket/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a lifecycle event is not legal from
// the shipment's current status. Wrapped errors carry the offending pair.
var ErrInvalidTransition = errors.New("invalid shipment status transition")

// Status represents the lifecycle state of a shipment.
// It implements a state machine with an explicit adjacency table so every
// legal transition is enumerable and testable in isolation:
//
//	Planned ──> Active ──> OrderGenerated ──> SellerSent
//	   │          │              │                │
//	   └──────────┴──────────────┘                v
//	     (SellerSent reachable from       IntermediaryDispatched
//	      any pre-dispatch status)                │
//	                                              v
//	                                   IntermediaryReceived
//	                                        │         │
//	                                        v         v
//	                                    Delivered  Withdrawn
//
// Cancelled is reachable from every non-terminal status. Delivered, Withdrawn
// and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Planned is the initial status: an intermediary proposed the route and
	// purchases may attach over time.
	Planned

	// Active means the capacity gate was satisfied (or the operator activated
	// the shipment explicitly) and the route is confirmed.
	Active

	// OrderGenerated means the consolidated shipping order was produced.
	OrderGenerated

	// SellerSent means sellers handed their purchases to the origin
	// intermediary.
	SellerSent

	// IntermediaryDispatched means the origin intermediary sent the batch
	// towards the destination.
	IntermediaryDispatched

	// IntermediaryReceived means the destination intermediary holds the batch
	// and buyers can pick up.
	IntermediaryReceived

	// Delivered is the terminal status for a fully delivered shipment.
	Delivered

	// Withdrawn is the terminal status when buyers collected the batch at the
	// intermediary instead of receiving deliveries.
	Withdrawn

	// Cancelled is the terminal status for an aborted shipment.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "Unknown",
		Planned:                "Planned",
		Active:                 "Active",
		OrderGenerated:         "OrderGenerated",
		SellerSent:             "SellerSent",
		IntermediaryDispatched: "IntermediaryDispatched",
		IntermediaryReceived:   "IntermediaryReceived",
		Delivered:              "Delivered",
		Withdrawn:              "Withdrawn",
		Cancelled:              "Cancelled",
	}
}

// transitions is the full adjacency table of the lifecycle. An event is legal
// iff its (from, to) pair appears here.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Planned:                {Active, OrderGenerated, SellerSent, Cancelled},
		Active:                 {OrderGenerated, SellerSent, Cancelled},
		OrderGenerated:         {SellerSent, Cancelled},
		SellerSent:             {IntermediaryDispatched, Cancelled},
		IntermediaryDispatched: {IntermediaryReceived, Cancelled},
		IntermediaryReceived:   {Delivered, Withdrawn, Cancelled},
		Delivered:              {},
		Withdrawn:              {},
		Cancelled:              {},
	}
}

// Validate checks if the Status value is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the (s, next) edge exists in the adjacency
// table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the status along the (s, next) edge.
// Returns ErrInvalidTransition (wrapped with the offending pair) when the edge
// is not in the table; s is left unchanged in that case since Status is a value.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}

// IsTerminal reports whether no further transitions exist from s.
func (s Status) IsTerminal() bool {
	return len(transitions()[s]) == 0 && s.Validate() == nil
}

// IsPreDispatch reports whether sellers may still hand purchases to the origin
// intermediary, i.e. the batch has not left yet.
func (s Status) IsPreDispatch() bool {
	return s == Planned || s == Active || s == OrderGenerated
}
