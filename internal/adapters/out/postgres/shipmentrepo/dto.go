// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The shipment row carries the optimistic-lock
// version; the attached purchase collection lives in the purchases table and
// is loaded and saved together with the aggregate.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"cardmarket/internal/adapters/out/postgres/purchaserepo"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates.
type ShipmentDTO struct {
	ID                        uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Status                    int                        `gorm:"type:int;not null;index"`
	OriginIntermediaryID      uuid.UUID                  `gorm:"type:uuid;not null;index"`
	DestinationIntermediaryID *uuid.UUID                 `gorm:"type:uuid;index"`
	MinPurchaseThreshold      *int                       `gorm:"type:int"`
	PricePerPurchaseCents     *int64                     `gorm:"type:bigint"`
	PricePerPurchaseCurrency  *string                    `gorm:"type:varchar(3)"`
	ScheduledDispatchDate     *time.Time                 ``
	DeliveredDate             *time.Time                 ``
	Notes                     string                     `gorm:"type:text"`
	Version                   int                        `gorm:"type:int;not null"`
	Purchases                 []purchaserepo.PurchaseDTO `gorm:"foreignKey:ShipmentID"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
// The purchase collection is mapped through purchaserepo so both repositories
// share one row shape.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var destinationID *uuid.UUID
	if id := aggregate.DestinationIntermediary(); id != nil {
		raw := id.Bytes()
		destinationID = &raw
	}

	var priceCents *int64
	var priceCurrency *string
	if price := aggregate.PricePerPurchase(); price != nil {
		cents := price.Cents()
		currency := price.Currency()
		priceCents = &cents
		priceCurrency = &currency
	}

	purchases := make([]purchaserepo.PurchaseDTO, 0, len(aggregate.Purchases()))
	for _, p := range aggregate.Purchases() {
		purchases = append(purchases, purchaserepo.FromDomain(p))
	}

	return ShipmentDTO{
		ID:                        aggregate.ID().Bytes(),
		Status:                    int(aggregate.Status()),
		OriginIntermediaryID:      aggregate.OriginIntermediary().Bytes(),
		DestinationIntermediaryID: destinationID,
		MinPurchaseThreshold:      aggregate.MinPurchaseThreshold(),
		PricePerPurchaseCents:     priceCents,
		PricePerPurchaseCurrency:  priceCurrency,
		ScheduledDispatchDate:     aggregate.ScheduledDispatchDate(),
		DeliveredDate:             aggregate.DeliveredDate(),
		Notes:                     aggregate.Notes(),
		Version:                   aggregate.Version(),
		Purchases:                 purchases,
	}
}

// toDomain converts a database DTO to a shipment aggregate using
// RestoreShipment, purchase collection included.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originID, err := kernel.UUIDFromBytes(dto.OriginIntermediaryID[:])
	if err != nil {
		return nil, err
	}

	var destinationID *kernel.UUID
	if dto.DestinationIntermediaryID != nil {
		dID, destErr := kernel.UUIDFromBytes((*dto.DestinationIntermediaryID)[:])
		if destErr != nil {
			return nil, destErr
		}
		destinationID = &dID
	}

	var price *kernel.Money
	if dto.PricePerPurchaseCents != nil && dto.PricePerPurchaseCurrency != nil {
		money, priceErr := kernel.NewMoney(*dto.PricePerPurchaseCents, *dto.PricePerPurchaseCurrency)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &money
	}

	purchases := make([]*purchase.Purchase, 0, len(dto.Purchases))
	for _, purchaseDTO := range dto.Purchases {
		p, purchaseErr := purchaserepo.ToDomain(purchaseDTO)
		if purchaseErr != nil {
			return nil, purchaseErr
		}
		purchases = append(purchases, p)
	}

	return shipment.RestoreShipment(
		id,
		shipment.Status(dto.Status),
		originID,
		destinationID,
		dto.MinPurchaseThreshold,
		price,
		dto.ScheduledDispatchDate,
		dto.DeliveredDate,
		dto.Notes,
		purchases,
		dto.Version,
	)
}
