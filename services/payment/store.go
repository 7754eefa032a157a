package payment

import (
	"context"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/google/uuid"
)

// Queries are the storage operations one reconciliation unit needs.
type Queries interface {
	GetTransactionByReferenceForUpdate(ctx context.Context, reference string) (db.WalletTransaction, error)
	GetWalletByIDForUpdate(ctx context.Context, id uuid.UUID) (db.SwiftWallet, error)
	CreditWalletBalance(ctx context.Context, arg db.CreditWalletBalanceParams) (db.SwiftWallet, error)
	CreateWalletTransaction(ctx context.Context, arg db.CreateWalletTransactionParams) (db.WalletTransaction, error)
	MarkTransactionSuccess(ctx context.Context, id uuid.UUID) (db.WalletTransaction, error)
}

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
