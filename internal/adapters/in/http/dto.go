package http

import (
	"time"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterIntermediaryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	City     string `json:"city"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type PlanShipmentRequest struct {
	DestinationIntermediaryID *string    `json:"destination_intermediary_id,omitempty"`
	MinPurchaseThreshold      *int       `json:"min_purchase_threshold,omitempty"`
	PricePerPurchaseCents     *int64     `json:"price_per_purchase_cents,omitempty"`
	PricePerPurchaseCurrency  *string    `json:"price_per_purchase_currency,omitempty"`
	ScheduledDispatchDate     *time.Time `json:"scheduled_dispatch_date,omitempty"`
}

type UpdateShipmentDetailsRequest struct {
	Notes                 *string    `json:"notes,omitempty"`
	ScheduledDispatchDate *time.Time `json:"scheduled_dispatch_date,omitempty"`
}

type DispatchShipmentRequest struct {
	Notes string `json:"notes"`
}

type SetPurchaseStatusRequest struct {
	Status string `json:"status"`
}

type LineItemRequest struct {
	CardID            string `json:"card_id"`
	CardName          string `json:"card_name"`
	Quantity          int    `json:"quantity"`
	UnitPriceCents    int64  `json:"unit_price_cents"`
	UnitPriceCurrency string `json:"unit_price_currency"`
}

type CreatePurchaseRequest struct {
	BuyerID         string            `json:"buyer_id"`
	DeliveryAddress string            `json:"delivery_address"`
	LineItems       []LineItemRequest `json:"line_items"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

type ShipmentResponse struct {
	ID                        string     `json:"id"`
	Status                    string     `json:"status"`
	OriginIntermediaryID      string     `json:"origin_intermediary_id"`
	DestinationIntermediaryID *string    `json:"destination_intermediary_id,omitempty"`
	MinPurchaseThreshold      *int       `json:"min_purchase_threshold,omitempty"`
	ScheduledDispatchDate     *time.Time `json:"scheduled_dispatch_date,omitempty"`
	PurchaseCount             int        `json:"purchase_count"`
}

type PurchaseResponse struct {
	ID              string `json:"id"`
	BuyerID         string `json:"buyer_id"`
	Status          string `json:"status"`
	TotalCents      int64  `json:"total_cents"`
	TotalCurrency   string `json:"total_currency"`
	DeliveryAddress string `json:"delivery_address"`
}
