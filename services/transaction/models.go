package transaction

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeDeposit         = "DEPOSIT"
	TypeShipmentPayment = "SHIPMENT_PAYMENT"
)

const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

type TransactionModel struct {
	ID          uuid.UUID  `json:"id"`
	WalletID    uuid.UUID  `json:"wallet_id"`
	Type        string     `json:"type"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	Reference   string     `json:"reference"`
	Description string     `json:"description"`
	ShipmentID  *uuid.UUID `json:"shipment_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
