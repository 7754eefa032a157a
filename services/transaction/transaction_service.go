package transaction

import (
	"context"
	"database/sql"
	"fmt"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/wallet"
)

// TransactionService is the read side of the ledger. All writes happen inside
// the booking and reconciliation units; nothing here mutates a balance.
type TransactionService struct {
	store        *db.Store
	walletClient *wallet.WalletService
	logger       *logging.Logger
}

func NewTransactionService(store *db.Store, walletClient *wallet.WalletService, logger *logging.Logger) *TransactionService {
	return &TransactionService{
		store:        store,
		walletClient: walletClient,
		logger:       logger,
	}
}

func (s *TransactionService) ListForOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*TransactionModel, error) {
	owned, err := s.walletClient.GetWalletByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.ListTransactionsByWallet(ctx, db.ListTransactionsByWalletParams{
		WalletID: owned.ID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return ToTransactionCollection(rows), nil
}

func (s *TransactionService) GetByReference(ctx context.Context, reference string) (*TransactionModel, error) {
	row, err := s.store.GetTransactionByReference(ctx, reference)
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	} else if err != nil {
		return nil, err
	}
	return ToTransactionModel(row), nil
}
