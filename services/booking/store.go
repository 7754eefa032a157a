package booking

import (
	"context"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
)

// Queries are the storage operations one booking unit needs. *db.Queries
// satisfies this; tests substitute an in-memory ledger.
type Queries interface {
	GetWalletByOwnerForUpdate(ctx context.Context, arg db.GetWalletByOwnerForUpdateParams) (db.SwiftWallet, error)
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)
	CreateShipment(ctx context.Context, arg db.CreateShipmentParams) (db.Shipment, error)
	DebitWalletBalance(ctx context.Context, arg db.DebitWalletBalanceParams) (db.SwiftWallet, error)
	CreateWalletTransaction(ctx context.Context, arg db.CreateWalletTransactionParams) (db.WalletTransaction, error)
}

// Store runs a booking unit atomically. Every step commits together or not
// at all.
type Store interface {
	ExecSerializableTx(ctx context.Context, fn func(q Queries) error) error
}

type sqlStore struct {
	store *db.Store
}

func NewStore(store *db.Store) Store {
	return &sqlStore{store: store}
}

func (s *sqlStore) ExecSerializableTx(ctx context.Context, fn func(q Queries) error) error {
	return s.store.ExecSerializableTx(ctx, func(q *db.Queries) error {
		return fn(q)
	})
}
