package ports

import (
	"context"
	"time"
)

// ShipmentStatusChangedEvent is the integration event emitted after a
// lifecycle transition committed. Downstream consumers (search, analytics,
// the storefront) rebuild their projections from it.
type ShipmentStatusChangedEvent struct {
	ShipmentID string    `json:"shipment_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes integration events to the message broker.
// Publishing happens after the owning transaction committed and is
// best-effort: a broker failure is logged, never surfaced to the client.
type EventPublisher interface {
	// PublishShipmentStatusChanged emits one status-transition event.
	PublishShipmentStatusChanged(ctx context.Context, event ShipmentStatusChangedEvent) error

	// Close releases the broker connection.
	Close() error
}
