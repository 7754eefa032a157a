package models

import (
	"github.com/SwiftShip/SwiftShip-Backend/services/shipment"
	"github.com/shopspring/decimal"
)

type BookShipmentParams struct {
	SenderDetails    shipment.PartyDetails `json:"sender_details" binding:"required"`
	RecipientDetails shipment.PartyDetails `json:"recipient_details" binding:"required"`
	WeightKg         decimal.Decimal       `json:"weight_kg" binding:"required"`
	ServiceType      string                `json:"service_type" binding:"required"`
	Fragile          bool                  `json:"fragile"`
	Notes            string                `json:"notes"`
}

type UpdateShipmentStatusParams struct {
	Status string `json:"status" binding:"required"`
}
