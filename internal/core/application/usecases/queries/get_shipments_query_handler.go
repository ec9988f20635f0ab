package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/shipment"
)

// GetShipmentsQueryHandler reads the shipment listing straight from the
// database, joining in the attached-purchase count.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment listings.
// Requires a GORM database connection for query execution.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the listing query for the requested role.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var roleFilter string
	switch query.Role() {
	case RoleOrigin:
		roleFilter = "s.origin_intermediary_id = @id"
	case RoleDestination:
		roleFilter = "s.destination_intermediary_id = @id"
	default:
		roleFilter = "(s.origin_intermediary_id = @id OR s.destination_intermediary_id = @id)"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.status,
			s.origin_intermediary_id,
			s.destination_intermediary_id,
			s.min_purchase_threshold,
			s.scheduled_dispatch_date,
			COUNT(p.id) AS purchase_count
		FROM shipments s
		LEFT JOIN purchases p ON p.shipment_id = s.id
		WHERE `+roleFilter+`
		GROUP BY s.id
		ORDER BY s.id
	`, map[string]any{"id": query.IntermediaryID().String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetShipmentsQueryResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			status        int
			originID      uuid.UUID
			destinationID *uuid.UUID
			threshold     *int
			scheduled     *time.Time
			purchaseCount int
		)

		if err = rows.Scan(&id, &status, &originID, &destinationID, &threshold, &scheduled, &purchaseCount); err != nil {
			return nil, err
		}

		resp, convErr := buildShipmentRow(id, status, originID, destinationID, threshold, scheduled, purchaseCount)
		if convErr != nil {
			return nil, convErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shipments, nil
}

func buildShipmentRow(
	id uuid.UUID,
	status int,
	originID uuid.UUID,
	destinationID *uuid.UUID,
	threshold *int,
	scheduled *time.Time,
	purchaseCount int,
) (GetShipmentsQueryResponse, error) {
	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	origin, err := kernel.UUIDFromBytes(originID[:])
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	var destination *kernel.UUID
	if destinationID != nil {
		d, destErr := kernel.UUIDFromBytes(destinationID[:])
		if destErr != nil {
			return GetShipmentsQueryResponse{}, destErr
		}
		destination = &d
	}

	shipmentStatus := shipment.Status(status)
	if err = shipmentStatus.Validate(); err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	return GetShipmentsQueryResponse{
		ID:                        shipmentID,
		Status:                    shipmentStatus.String(),
		OriginIntermediaryID:      origin,
		DestinationIntermediaryID: destination,
		MinPurchaseThreshold:      threshold,
		ScheduledDispatchDate:     scheduled,
		PurchaseCount:             purchaseCount,
	}, nil
}
