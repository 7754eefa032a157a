package shipment

import (
	"encoding/json"
	"time"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/google/uuid"
)

const (
	StatusPending        = "PENDING"
	StatusPickedUp       = "PICKED_UP"
	StatusInTransit      = "IN_TRANSIT"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusDelivered      = "DELIVERED"
	StatusCancelled      = "CANCELLED"
)

const (
	ServiceStandard = "standard"
	ServiceExpress  = "express"
)

// PartyDetails describes one end of a shipment. Stored as JSONB on the row.
type PartyDetails struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,e164"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required,iso3166_1_alpha2"`
}

type ShipmentModel struct {
	ID               uuid.UUID    `json:"id"`
	OwnerID          int64        `json:"owner_id"`
	TrackingNumber   string       `json:"tracking_number"`
	Status           string       `json:"status"`
	ServiceType      string       `json:"service_type"`
	WeightKg         string       `json:"weight_kg"`
	PriceAmount      string       `json:"price_amount"`
	SenderDetails    PartyDetails `json:"sender_details"`
	RecipientDetails PartyDetails `json:"recipient_details"`
	Notes            string       `json:"notes"`
	CreatedAt        time.Time    `json:"created_at"`
	DeliveredAt      *time.Time   `json:"delivered_at,omitempty"`
}

// TimelineModel is the public (unauthenticated) view of a shipment. It
// deliberately exposes no addresses or contact details.
type TimelineModel struct {
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	ServiceType    string     `json:"service_type"`
	BookedAt       time.Time  `json:"booked_at"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

func ToShipmentModel(s db.Shipment) (*ShipmentModel, error) {
	var sender, recipient PartyDetails
	if err := json.Unmarshal(s.SenderDetails, &sender); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(s.RecipientDetails, &recipient); err != nil {
		return nil, err
	}

	m := &ShipmentModel{
		ID:               s.ID,
		OwnerID:          s.OwnerID,
		TrackingNumber:   s.TrackingNumber,
		Status:           s.Status,
		ServiceType:      s.ServiceType,
		WeightKg:         s.WeightKg,
		PriceAmount:      s.PriceAmount,
		SenderDetails:    sender,
		RecipientDetails: recipient,
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
	}
	if s.DeliveredAt.Valid {
		t := s.DeliveredAt.Time
		m.DeliveredAt = &t
	}
	return m, nil
}

func ToTimelineModel(s db.Shipment) *TimelineModel {
	m := &TimelineModel{
		TrackingNumber: s.TrackingNumber,
		Status:         s.Status,
		ServiceType:    s.ServiceType,
		BookedAt:       s.CreatedAt,
	}
	if s.DeliveredAt.Valid {
		t := s.DeliveredAt.Time
		m.DeliveredAt = &t
	}
	return m
}

var statusOrder = map[string]int{
	StatusPending:        0,
	StatusPickedUp:       1,
	StatusInTransit:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// CanTransition enforces the forward-only progression. CANCELLED is reachable
// from any non-terminal state; DELIVERED and CANCELLED are terminal.
func CanTransition(from, to string) error {
	if from == StatusDelivered || from == StatusCancelled {
		return ErrShipmentTerminal
	}
	if to == StatusCancelled {
		return nil
	}
	fromOrder, ok := statusOrder[from]
	if !ok {
		return ErrInvalidStatus
	}
	toOrder, ok := statusOrder[to]
	if !ok {
		return ErrInvalidStatus
	}
	if toOrder <= fromOrder {
		return ErrBackwardTransition
	}
	return nil
}
