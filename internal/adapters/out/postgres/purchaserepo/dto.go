// Package purchaserepo provides data transfer objects and mapping functions
// for purchase persistence. It implements the repository pattern for the
// purchase aggregate, converting between domain entities and database rows.
package purchaserepo

import (
	"github.com/google/uuid"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
)

// PurchaseDTO represents the database structure for persisting purchase
// aggregates. The shipment_id column is the back-reference to the owning
// shipment; the version column carries the optimistic lock.
type PurchaseDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	TotalCents      int64         `gorm:"type:bigint;not null"`
	TotalCurrency   string        `gorm:"type:varchar(3);not null"`
	Status          int           `gorm:"type:int;not null"`
	DeliveryAddress string        `gorm:"type:text"`
	ShipmentID      *uuid.UUID    `gorm:"type:uuid;index"`
	Version         int           `gorm:"type:int;not null"`
	LineItems       []LineItemDTO `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for purchase entities.
func (PurchaseDTO) TableName() string {
	return "purchases"
}

// LineItemDTO represents one card position of a purchase. Line items are an
// immutable checkout snapshot, written once with the purchase and never
// updated.
type LineItemDTO struct {
	ID                uint      `gorm:"primaryKey"`
	PurchaseID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CardID            uuid.UUID `gorm:"type:uuid;not null"`
	CardName          string    `gorm:"type:varchar(255);not null"`
	Quantity          int       `gorm:"type:int;not null"`
	UnitPriceCents    int64     `gorm:"type:bigint;not null"`
	UnitPriceCurrency string    `gorm:"type:varchar(3);not null"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "purchase_line_items"
}

// FromDomain converts a purchase aggregate to its database representation.
// Exported because shipmentrepo persists the attached purchase collection
// through the same mapping.
func FromDomain(aggregate *purchase.Purchase) PurchaseDTO {
	var shipmentID *uuid.UUID
	if id := aggregate.Shipment(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	purchaseID := aggregate.ID().Bytes()
	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			PurchaseID:        purchaseID,
			CardID:            item.CardID().Bytes(),
			CardName:          item.CardName(),
			Quantity:          item.Quantity(),
			UnitPriceCents:    item.UnitPrice().Cents(),
			UnitPriceCurrency: item.UnitPrice().Currency(),
		})
	}

	return PurchaseDTO{
		ID:              purchaseID,
		BuyerID:         aggregate.BuyerID().Bytes(),
		TotalCents:      aggregate.Total().Cents(),
		TotalCurrency:   aggregate.Total().Currency(),
		Status:          int(aggregate.Status()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		ShipmentID:      shipmentID,
		Version:         aggregate.Version(),
		LineItems:       lineItems,
	}
}

// ToDomain converts a database DTO to a purchase aggregate using
// RestorePurchase.
func ToDomain(dto PurchaseDTO) (*purchase.Purchase, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents, dto.TotalCurrency)
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipErr != nil {
			return nil, shipErr
		}
		shipmentID = &sID
	}

	lineItems := make([]purchase.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		cardID, cardErr := kernel.UUIDFromBytes(itemDTO.CardID[:])
		if cardErr != nil {
			return nil, cardErr
		}

		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPriceCents, itemDTO.UnitPriceCurrency)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := purchase.NewLineItem(cardID, itemDTO.CardName, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return purchase.RestorePurchase(
		id,
		buyerID,
		total,
		purchase.Status(dto.Status),
		lineItems,
		dto.DeliveryAddress,
		shipmentID,
		dto.Version,
	)
}
