package wallet

import (
	"context"
	"database/sql"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/google/uuid"
)

// DefaultCurrency is the only wallet currency currently issued.
const DefaultCurrency = "NGN"

type WalletService struct {
	store  *db.Store
	logger *logging.Logger
}

func NewWalletService(store *db.Store, logger *logging.Logger) *WalletService {
	return &WalletService{
		store:  store,
		logger: logger,
	}
}

func (w *WalletService) GetWallet(ctx context.Context, walletID uuid.UUID) (*WalletModel, error) {
	db_wallet, err := w.store.GetWalletByID(ctx, walletID)
	if err == sql.ErrNoRows {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, err
	}
	return ToWalletModel(db_wallet)
}

func (w *WalletService) GetWalletByOwner(ctx context.Context, ownerID int64) (*WalletModel, error) {
	db_wallet, err := w.store.GetWalletByOwner(ctx, db.GetWalletByOwnerParams{
		OwnerID:  ownerID,
		Currency: DefaultCurrency,
	})
	if err == sql.ErrNoRows {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, err
	}
	return ToWalletModel(db_wallet)
}

// GetOrCreateWallet returns the owner's wallet, creating it on first access.
// Two callers racing the first access both land on the same row: the loser of
// the insert race hits the (owner_id, currency) unique constraint and
// re-reads. Only non-debiting paths (registration, deposits, balance views)
// may call this; booking never lazily creates a wallet.
func (w *WalletService) GetOrCreateWallet(ctx context.Context, ownerID int64) (*WalletModel, error) {
	db_wallet, err := w.store.GetWalletByOwner(ctx, db.GetWalletByOwnerParams{
		OwnerID:  ownerID,
		Currency: DefaultCurrency,
	})
	if err == nil {
		return ToWalletModel(db_wallet)
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	db_wallet, err = w.store.CreateWallet(ctx, db.CreateWalletParams{
		OwnerID:  ownerID,
		Currency: DefaultCurrency,
	})
	if db.IsUniqueViolation(err, "") {
		// Lost the first-access race; the winner's row is authoritative.
		db_wallet, err = w.store.GetWalletByOwner(ctx, db.GetWalletByOwnerParams{
			OwnerID:  ownerID,
			Currency: DefaultCurrency,
		})
	}
	if err != nil {
		w.logger.Error("could not create wallet", err)
		return nil, ErrWalletNotPossible
	}

	return ToWalletModel(db_wallet)
}
