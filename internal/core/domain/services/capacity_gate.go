package services

import (
	"cardmarket/internal/core/domain/model/shipment"
)

// CapacityGate is a domain service deciding when a planned shipment has
// collected enough purchases to leave the Planned status.
//
// The gate is advisory: crossing the threshold never auto-activates a
// shipment. It surfaces an "activate" affordance to the origin intermediary
// (via the readiness job and the read model), and the activation itself stays
// an explicit operator action.
//
// Business rules:
//   - A threshold is fixed at planning time and compared against the number
//     of attached purchases.
//   - Shipments without a threshold are never auto-gated: they only activate
//     on explicit operator action.
//   - Only Planned shipments can be ready; any other status is past the gate.
type CapacityGate struct{}

// NewCapacityGate creates a new CapacityGate instance.
func NewCapacityGate() CapacityGate {
	return CapacityGate{}
}

// IsReady reports whether the shipment's threshold is satisfied and the
// activate affordance should be surfaced to the operator.
func (CapacityGate) IsReady(s *shipment.Shipment) bool {
	if s == nil || s.Status() != shipment.Planned {
		return false
	}

	threshold := s.MinPurchaseThreshold()
	if threshold == nil {
		return false
	}

	return s.PurchaseCount() >= *threshold
}
