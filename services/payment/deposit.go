package payment

import (
	"context"
	"fmt"
	"time"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/providers/fiat"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/transaction"
	"github.com/SwiftShip/SwiftShip-Backend/services/wallet"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/shopspring/decimal"
	hashids "github.com/speps/go-hashids/v2"
)

// DepositService is the producer side of the reference the reconciler later
// consumes: it opens a Paystack checkout and records the PENDING leg.
type DepositService struct {
	store    *db.Store
	wallets  *wallet.WalletService
	paystack *fiat.PaystackProvider
	logger   *logging.Logger
	refCoder *hashids.HashID
	minKobo  int64
	maxKobo  int64
}

type DepositReceipt struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
}

func NewDepositService(store *db.Store, wallets *wallet.WalletService, paystack *fiat.PaystackProvider, logger *logging.Logger, config *utils.Config) (*DepositService, error) {
	hd := hashids.NewData()
	hd.Salt = config.SigningKey
	hd.MinLength = 10
	coder, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("could not build reference coder: %w", err)
	}

	return &DepositService{
		store:    store,
		wallets:  wallets,
		paystack: paystack,
		logger:   logger,
		refCoder: coder,
		minKobo:  config.DepositMinKobo,
		maxKobo:  config.DepositMaxKobo,
	}, nil
}

// InitiateDeposit opens a hosted checkout for amountKobo and records the
// PENDING transaction carrying the reference. A non-debiting path, so the
// wallet may be lazily created here.
func (s *DepositService) InitiateDeposit(ctx context.Context, userID int64, email string, amountKobo int64) (*DepositReceipt, error) {
	if amountKobo < s.minKobo || amountKobo > s.maxKobo {
		return nil, &AmountOutOfBoundsError{
			AmountKobo: amountKobo,
			MinKobo:    s.minKobo,
			MaxKobo:    s.maxKobo,
		}
	}

	owned, err := s.wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	reference := s.mintReference(userID)

	initialized, err := s.paystack.InitializeTransaction(email, amountKobo, reference, owned.ID.String())
	if err != nil {
		s.logger.Error(fmt.Sprintf("paystack initialize failed for user %d: %v", userID, err))
		return nil, ErrProviderUnavailable
	}

	amount := decimal.NewFromInt(amountKobo).Div(decimal.NewFromInt(100))

	_, err = s.store.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
		WalletID:    owned.ID,
		Type:        transaction.TypeDeposit,
		Amount:      amount.StringFixed(2),
		Status:      transaction.StatusPending,
		Reference:   initialized.Reference,
		Description: "Wallet top-up via Paystack",
	})
	if err != nil {
		return nil, fmt.Errorf("record pending deposit: %w", err)
	}

	return &DepositReceipt{
		Reference:        initialized.Reference,
		AuthorizationURL: initialized.AuthorizationURL,
	}, nil
}

// mintReference encodes the user id and a nanosecond nonce into a short
// opaque reference, e.g. SWS-DEP-4qXzR1mKWa.
func (s *DepositService) mintReference(userID int64) string {
	ref, err := s.refCoder.EncodeInt64([]int64{userID, time.Now().UnixNano()})
	if err != nil {
		// EncodeInt64 only fails on negative inputs, which cannot happen.
		panic(fmt.Sprintf("reference encoding failed: %v", err))
	}
	return "SWS-DEP-" + ref
}
