// Package services provides domain services that implement business rules
// spanning more than a single aggregate.
//
// The package includes:
//   - CapacityGate: decides when a planned shipment has collected enough
//     purchases to surface the activate affordance to its origin intermediary
//
// Domain services stay free of infrastructure concerns; they operate on
// aggregates handed to them by the application layer.
package services
