package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
)

// GetShipmentPurchasesQueryHandler reads the purchases attached to a shipment
// straight from the database.
type GetShipmentPurchasesQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentPurchasesQueryHandler creates a handler for purchase listings.
func NewGetShipmentPurchasesQueryHandler(db *gorm.DB) GetShipmentPurchasesQueryHandler {
	return GetShipmentPurchasesQueryHandler{db: db}
}

// Handle executes the purchase listing query.
func (h GetShipmentPurchasesQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentPurchasesQuery,
) ([]GetShipmentPurchasesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			status,
			total_cents,
			total_currency,
			delivery_address
		FROM purchases
		WHERE shipment_id = ?
		ORDER BY id
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := make([]GetShipmentPurchasesQueryResponse, 0)
	for rows.Next() {
		var (
			id              uuid.UUID
			buyerID         uuid.UUID
			status          int
			totalCents      int64
			totalCurrency   string
			deliveryAddress string
		)

		if err = rows.Scan(&id, &buyerID, &status, &totalCents, &totalCurrency, &deliveryAddress); err != nil {
			return nil, err
		}

		purchaseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		buyer, buyerErr := kernel.UUIDFromBytes(buyerID[:])
		if buyerErr != nil {
			return nil, buyerErr
		}

		purchaseStatus := purchase.Status(status)
		if err = purchaseStatus.Validate(); err != nil {
			return nil, err
		}

		purchases = append(purchases, GetShipmentPurchasesQueryResponse{
			ID:              purchaseID,
			BuyerID:         buyer,
			Status:          purchaseStatus.String(),
			TotalCents:      totalCents,
			TotalCurrency:   totalCurrency,
			DeliveryAddress: deliveryAddress,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return purchases, nil
}
