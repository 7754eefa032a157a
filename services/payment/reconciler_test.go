package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/providers/fiat"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "sk_test_reconciler"

type fakeQueries struct {
	wallets      map[uuid.UUID]*db.SwiftWallet
	transactions map[string]*db.WalletTransaction
	credits      int
}

func newFakeQueries() *fakeQueries {
	return &fakeQueries{
		wallets:      make(map[uuid.UUID]*db.SwiftWallet),
		transactions: make(map[string]*db.WalletTransaction),
	}
}

func (f *fakeQueries) addWallet(balance string) uuid.UUID {
	id := uuid.New()
	f.wallets[id] = &db.SwiftWallet{
		ID:       id,
		Balance:  balance,
		Currency: "NGN",
	}
	return id
}

func (f *fakeQueries) addPending(walletID uuid.UUID, reference, amount string) uuid.UUID {
	id := uuid.New()
	f.transactions[reference] = &db.WalletTransaction{
		ID:        id,
		WalletID:  walletID,
		Type:      transaction.TypeDeposit,
		Amount:    amount,
		Status:    transaction.StatusPending,
		Reference: reference,
	}
	return id
}

func (f *fakeQueries) GetTransactionByReferenceForUpdate(ctx context.Context, reference string) (db.WalletTransaction, error) {
	tx, ok := f.transactions[reference]
	if !ok {
		return db.WalletTransaction{}, sql.ErrNoRows
	}
	return *tx, nil
}

func (f *fakeQueries) GetWalletByIDForUpdate(ctx context.Context, id uuid.UUID) (db.SwiftWallet, error) {
	w, ok := f.wallets[id]
	if !ok {
		return db.SwiftWallet{}, sql.ErrNoRows
	}
	return *w, nil
}

func (f *fakeQueries) CreditWalletBalance(ctx context.Context, arg db.CreditWalletBalanceParams) (db.SwiftWallet, error) {
	w, ok := f.wallets[arg.WalletID]
	if !ok {
		return db.SwiftWallet{}, sql.ErrNoRows
	}
	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return db.SwiftWallet{}, err
	}
	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		return db.SwiftWallet{}, err
	}
	w.Balance = balance.Add(amount).StringFixed(2)
	f.credits++
	return *w, nil
}

func (f *fakeQueries) CreateWalletTransaction(ctx context.Context, arg db.CreateWalletTransactionParams) (db.WalletTransaction, error) {
	if _, exists := f.transactions[arg.Reference]; exists {
		return db.WalletTransaction{}, fmt.Errorf("duplicate reference %s", arg.Reference)
	}
	tx := db.WalletTransaction{
		ID:          uuid.New(),
		WalletID:    arg.WalletID,
		Type:        arg.Type,
		Amount:      arg.Amount,
		Status:      arg.Status,
		Reference:   arg.Reference,
		Description: arg.Description,
		CreatedAt:   time.Now(),
	}
	f.transactions[arg.Reference] = &tx
	return tx, nil
}

func (f *fakeQueries) MarkTransactionSuccess(ctx context.Context, id uuid.UUID) (db.WalletTransaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id && tx.Status == transaction.StatusPending {
			tx.Status = transaction.StatusSuccess
			return *tx, nil
		}
	}
	return db.WalletTransaction{}, sql.ErrNoRows
}

type fakeStore struct {
	q *fakeQueries
}

func (s *fakeStore) ExecSerializableTx(ctx context.Context, fn func(q Queries) error) error {
	return fn(s.q)
}

func testLogger() *logging.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return &logging.Logger{Logger: l}
}

func signedEvent(t *testing.T, event fiat.WebhookEvent) ([]byte, string) {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)

	mac := hmac.New(sha512.New, []byte(testSecret))
	mac.Write(body)
	return body, hex.EncodeToString(mac.Sum(nil))
}

func chargeSuccess(walletID uuid.UUID, reference string, amountKobo int64) fiat.WebhookEvent {
	return fiat.WebhookEvent{
		Event: "charge.success",
		Data: fiat.WebhookEventData{
			Reference: reference,
			Amount:    amountKobo,
			Status:    "success",
			Currency:  "NGN",
			Metadata:  fiat.TransactionMetadata{WalletID: walletID.String()},
		},
	}
}

func TestReconcileDepositCreditsPendingTransaction(t *testing.T) {
	q := newFakeQueries()
	walletID := q.addWallet("100.00")
	q.addPending(walletID, "SWS-DEP-abc123", "500.00")

	r := NewReconciler(&fakeStore{q: q}, testSecret, testLogger())

	body, sig := signedEvent(t, chargeSuccess(walletID, "SWS-DEP-abc123", 50_000))

	outcome, err := r.ReconcileDeposit(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCredited, outcome)

	assert.Equal(t, "600.00", q.wallets[walletID].Balance)
	assert.Equal(t, transaction.StatusSuccess, q.transactions["SWS-DEP-abc123"].Status)
	assert.Equal(t, 1, q.credits)
}

func TestReconcileDepositIsIdempotent(t *testing.T) {
	q := newFakeQueries()
	walletID := q.addWallet("0.00")
	q.addPending(walletID, "SWS-DEP-abc123", "500.00")

	r := NewReconciler(&fakeStore{q: q}, testSecret, testLogger())

	body, sig := signedEvent(t, chargeSuccess(walletID, "SWS-DEP-abc123", 50_000))

	// Paystack redelivers. Only the first delivery moves money.
	for i := 0; i < 5; i++ {
		outcome, err := r.ReconcileDeposit(context.Background(), body, sig)
		require.NoError(t, err)
		if i == 0 {
			assert.Equal(t, OutcomeCredited, outcome)
		} else {
			assert.Equal(t, OutcomeDuplicate, outcome)
		}
	}

	assert.Equal(t, "500.00", q.wallets[walletID].Balance)
	assert.Equal(t, 1, q.credits)
}

func TestReconcileDepositRejectsForgedSignature(t *testing.T) {
	q := newFakeQueries()
	walletID := q.addWallet("100.00")

	r := NewReconciler(&fakeStore{q: q}, testSecret, testLogger())

	body, err := json.Marshal(chargeSuccess(walletID, "SWS-DEP-evil", 9_000_000))
	require.NoError(t, err)

	mac := hmac.New(sha512.New, []byte("wrong-secret"))
	mac.Write(body)
	forged := hex.EncodeToString(mac.Sum(nil))

	outcome, rerr := r.ReconcileDeposit(context.Background(), body, forged)
	require.NoError(t, rerr)
	assert.Equal(t, OutcomeDroppedBadSig, outcome)

	// Nothing moved.
	assert.Equal(t, "100.00", q.wallets[walletID].Balance)
	assert.Empty(t, q.transactions)
}

func TestReconcileDepositDropsNoise(t *testing.T) {
	q := newFakeQueries()
	walletID := q.addWallet("100.00")

	r := NewReconciler(&fakeStore{q: q}, testSecret, testLogger())

	cases := []struct {
		name    string
		event   fiat.WebhookEvent
		outcome Outcome
	}{
		{
			"other event type",
			fiat.WebhookEvent{Event: "transfer.success"},
			OutcomeDroppedIgnored,
		},
		{
			"charge not successful",
			fiat.WebhookEvent{Event: "charge.success", Data: fiat.WebhookEventData{Status: "failed"}},
			OutcomeDroppedNotSuccess,
		},
		{
			"missing reference",
			fiat.WebhookEvent{Event: "charge.success", Data: fiat.WebhookEventData{Status: "success", Amount: 100}},
			OutcomeDroppedMalformed,
		},
		{
			"non-positive amount",
			chargeSuccess(walletID, "SWS-DEP-zero", 0),
			OutcomeDroppedMalformed,
		},
		{
			"unparseable wallet id",
			fiat.WebhookEvent{Event: "charge.success", Data: fiat.WebhookEventData{
				Status:    "success",
				Reference: "SWS-DEP-bad",
				Amount:    100,
				Metadata:  fiat.TransactionMetadata{WalletID: "not-a-uuid"},
			}},
			OutcomeDroppedMalformed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, sig := signedEvent(t, tc.event)
			outcome, err := r.ReconcileDeposit(context.Background(), body, sig)
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, outcome)
		})
	}

	body := []byte("{not json")
	mac := hmac.New(sha512.New, []byte(testSecret))
	mac.Write(body)
	outcome, err := r.ReconcileDeposit(context.Background(), body, hex.EncodeToString(mac.Sum(nil)))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDroppedMalformed, outcome)

	assert.Equal(t, "100.00", q.wallets[walletID].Balance)
	assert.Zero(t, q.credits)
}

func TestReconcileDepositUnknownReferenceStillCredits(t *testing.T) {
	q := newFakeQueries()
	walletID := q.addWallet("0.00")

	r := NewReconciler(&fakeStore{q: q}, testSecret, testLogger())

	body, sig := signedEvent(t, chargeSuccess(walletID, "PSK-provider-ref", 25_000))

	outcome, err := r.ReconcileDeposit(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCredited, outcome)

	assert.Equal(t, "250.00", q.wallets[walletID].Balance)
	tx := q.transactions["PSK-provider-ref"]
	require.NotNil(t, tx)
	assert.Equal(t, transaction.StatusSuccess, tx.Status)
	assert.Equal(t, transaction.TypeDeposit, tx.Type)
	assert.Equal(t, "250.00", tx.Amount)
}

func TestReconcileDepositFailedTransactionIsTerminal(t *testing.T) {
	q := newFakeQueries()
	walletID := q.addWallet("0.00")
	q.addPending(walletID, "SWS-DEP-dead", "500.00")
	q.transactions["SWS-DEP-dead"].Status = transaction.StatusFailed

	r := NewReconciler(&fakeStore{q: q}, testSecret, testLogger())

	body, sig := signedEvent(t, chargeSuccess(walletID, "SWS-DEP-dead", 50_000))

	outcome, err := r.ReconcileDeposit(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDroppedTerminal, outcome)

	assert.Equal(t, "0.00", q.wallets[walletID].Balance)
	assert.Equal(t, transaction.StatusFailed, q.transactions["SWS-DEP-dead"].Status)
}

func TestReconcileDepositMissingWalletFailsTheUnit(t *testing.T) {
	q := newFakeQueries()

	r := NewReconciler(&fakeStore{q: q}, testSecret, testLogger())

	body, sig := signedEvent(t, chargeSuccess(uuid.New(), "SWS-DEP-ghost", 10_000))

	outcome, err := r.ReconcileDeposit(context.Background(), body, sig)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWalletIntegrity)
	assert.Empty(t, string(outcome))
}
