package wallet

import (
	"time"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletModel struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   int64           `json:"owner_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToWalletModel(wallet db.SwiftWallet) (*WalletModel, error) {
	balance, err := decimal.NewFromString(wallet.Balance)
	if err != nil {
		return nil, err
	}
	return &WalletModel{
		ID:        wallet.ID,
		OwnerID:   wallet.OwnerID,
		Balance:   balance,
		Currency:  wallet.Currency,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}, nil
}
