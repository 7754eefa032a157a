package kyc

import (
	"time"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type KYCModel struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	BusinessName string    `json:"business_name"`
	RCNumber     string    `json:"rc_number"`
	DocumentKey  string    `json:"document_key"`
	Status       string    `json:"status"`
	ReviewedBy   *int64    `json:"reviewed_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToKYCModel(record db.KycRecord) *KYCModel {
	m := &KYCModel{
		ID:           record.ID,
		UserID:       record.UserID,
		BusinessName: record.BusinessName,
		RCNumber:     record.RcNumber,
		DocumentKey:  record.DocumentKey,
		Status:       record.Status,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
	if record.ReviewedBy.Valid {
		reviewer := record.ReviewedBy.Int64
		m.ReviewedBy = &reviewer
	}
	return m
}
