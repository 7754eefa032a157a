package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/pricing"
	"github.com/SwiftShip/SwiftShip-Backend/services/shipment"
	"github.com/SwiftShip/SwiftShip-Backend/services/transaction"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueries is an in-memory ledger implementing the Queries interface.
type fakeQueries struct {
	wallets      map[uuid.UUID]*db.SwiftWallet
	walletsOwner map[int64]uuid.UUID
	taken        map[string]bool
	shipments    []db.Shipment
	ledger       []db.WalletTransaction

	alwaysCollide bool
	raceDebit     bool
	raceInsert    bool
}

func newFakeQueries() *fakeQueries {
	return &fakeQueries{
		wallets:      make(map[uuid.UUID]*db.SwiftWallet),
		walletsOwner: make(map[int64]uuid.UUID),
		taken:        make(map[string]bool),
	}
}

func (f *fakeQueries) addWallet(ownerID int64, balance string) uuid.UUID {
	id := uuid.New()
	f.wallets[id] = &db.SwiftWallet{
		ID:       id,
		OwnerID:  ownerID,
		Balance:  balance,
		Currency: "NGN",
	}
	f.walletsOwner[ownerID] = id
	return id
}

func (f *fakeQueries) GetWalletByOwnerForUpdate(ctx context.Context, arg db.GetWalletByOwnerForUpdateParams) (db.SwiftWallet, error) {
	id, ok := f.walletsOwner[arg.OwnerID]
	if !ok {
		return db.SwiftWallet{}, sql.ErrNoRows
	}
	return *f.wallets[id], nil
}

func (f *fakeQueries) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	if f.alwaysCollide {
		return true, nil
	}
	return f.taken[trackingNumber], nil
}

func (f *fakeQueries) CreateShipment(ctx context.Context, arg db.CreateShipmentParams) (db.Shipment, error) {
	if f.raceInsert {
		// A concurrent booking committed this tracking number between our
		// availability check and the insert.
		return db.Shipment{}, &pq.Error{Code: "23505", Constraint: "shipments_tracking_number_key"}
	}
	s := db.Shipment{
		ID:               uuid.New(),
		OwnerID:          arg.OwnerID,
		TrackingNumber:   arg.TrackingNumber,
		Status:           arg.Status,
		ServiceType:      arg.ServiceType,
		WeightKg:         arg.WeightKg,
		PriceAmount:      arg.PriceAmount,
		SenderDetails:    arg.SenderDetails,
		RecipientDetails: arg.RecipientDetails,
		Notes:            arg.Notes,
		CreatedAt:        time.Now(),
	}
	f.taken[arg.TrackingNumber] = true
	f.shipments = append(f.shipments, s)
	return s, nil
}

func (f *fakeQueries) DebitWalletBalance(ctx context.Context, arg db.DebitWalletBalanceParams) (db.SwiftWallet, error) {
	if f.raceDebit {
		// A concurrent debit won the row and drained it after our balance
		// read, so the guarded UPDATE matches nothing.
		return db.SwiftWallet{}, sql.ErrNoRows
	}
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
	if balance.LessThan(amount) {
		// The guarded UPDATE matches no row when the balance cannot cover it.
		return db.SwiftWallet{}, sql.ErrNoRows
	}
	w.Balance = balance.Sub(amount).StringFixed(2)
	return *w, nil
}

func (f *fakeQueries) CreateWalletTransaction(ctx context.Context, arg db.CreateWalletTransactionParams) (db.WalletTransaction, error) {
	tx := db.WalletTransaction{
		ID:          uuid.New(),
		WalletID:    arg.WalletID,
		Type:        arg.Type,
		Amount:      arg.Amount,
		Status:      arg.Status,
		Reference:   arg.Reference,
		Description: arg.Description,
		ShipmentID:  arg.ShipmentID,
		CreatedAt:   time.Now(),
	}
	f.ledger = append(f.ledger, tx)
	return tx, nil
}

// fakeStore runs the unit against a snapshot and discards every write when
// the unit fails, mirroring a rolled-back transaction.
type fakeStore struct {
	q *fakeQueries
}

func (s *fakeStore) ExecSerializableTx(ctx context.Context, fn func(q Queries) error) error {
	snapshot := s.snapshot()
	if err := fn(s.q); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *fakeStore) snapshot() *fakeQueries {
	copied := newFakeQueries()
	for id, w := range s.q.wallets {
		ww := *w
		copied.wallets[id] = &ww
	}
	for owner, id := range s.q.walletsOwner {
		copied.walletsOwner[owner] = id
	}
	for k, v := range s.q.taken {
		copied.taken[k] = v
	}
	copied.shipments = append(copied.shipments, s.q.shipments...)
	copied.ledger = append(copied.ledger, s.q.ledger...)
	copied.alwaysCollide = s.q.alwaysCollide
	return copied
}

func (s *fakeStore) restore(snapshot *fakeQueries) {
	s.q.wallets = snapshot.wallets
	s.q.walletsOwner = snapshot.walletsOwner
	s.q.taken = snapshot.taken
	s.q.shipments = snapshot.shipments
	s.q.ledger = snapshot.ledger
}

func testLogger() *logging.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return &logging.Logger{Logger: l}
}

func testService(q *fakeQueries) *BookingService {
	return NewBookingService(&fakeStore{q: q}, pricing.NewRateTableOracle(), nil, testLogger(), "https://swiftship.example/track")
}

func validRequest() BookingRequest {
	return BookingRequest{
		SenderDetails: shipment.PartyDetails{
			Name:    "Ada Obi",
			Phone:   "+2348012345678",
			Address: "14 Marina Road",
			City:    "Lagos",
			Country: "NG",
		},
		RecipientDetails: shipment.PartyDetails{
			Name:    "Chidi Eze",
			Phone:   "+2348098765432",
			Address: "3 Aba Road",
			City:    "Port Harcourt",
			Country: "NG",
		},
		WeightKg:    decimal.NewFromInt(2),
		ServiceType: shipment.ServiceStandard,
	}
}

func TestBookShipmentDebitsWalletAtomically(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "5000.00")

	svc := testService(q)

	// standard 2kg: 1500 + 2*350 = 2200.00
	receipt, err := svc.BookShipment(context.Background(), Actor{ID: 7, Name: "Ada Obi"}, validRequest())
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Equal(t, "2200.00", receipt.PriceAmount.StringFixed(2))
	assert.Equal(t, "2800.00", receipt.NewBalance.StringFixed(2))
	assert.True(t, shipment.IsValidTrackingNumber(receipt.TrackingNumber))

	require.Len(t, q.shipments, 1)
	assert.Equal(t, shipment.StatusPending, q.shipments[0].Status)
	assert.Equal(t, receipt.TrackingNumber, q.shipments[0].TrackingNumber)

	require.Len(t, q.ledger, 1)
	entry := q.ledger[0]
	assert.Equal(t, transaction.TypeShipmentPayment, entry.Type)
	assert.Equal(t, transaction.StatusSuccess, entry.Status)
	assert.Equal(t, "-2200.00", entry.Amount)
	assert.True(t, entry.ShipmentID.Valid)
	assert.Equal(t, q.shipments[0].ID, entry.ShipmentID.UUID)
	assert.Equal(t, "SHP-"+q.shipments[0].ID.String(), entry.Reference)
}

func TestBookShipmentInsufficientFundsLeavesNoTrace(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "1000.00")

	svc := testService(q)

	receipt, err := svc.BookShipment(context.Background(), Actor{ID: 7}, validRequest())
	require.Error(t, err)
	assert.Nil(t, receipt)

	var insufficient *InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "2200.00", insufficient.Required.StringFixed(2))
	assert.Equal(t, "1000.00", insufficient.Balance.StringFixed(2))

	// Nothing committed: no shipment, no ledger row, balance untouched.
	assert.Empty(t, q.shipments)
	assert.Empty(t, q.ledger)
	assert.Equal(t, "1000.00", q.wallets[q.walletsOwner[7]].Balance)
}

func TestBookShipmentExactBalanceSucceeds(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "2200.00")

	svc := testService(q)

	receipt, err := svc.BookShipment(context.Background(), Actor{ID: 7}, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "0.00", receipt.NewBalance.StringFixed(2))
}

func TestBookShipmentWalletNotFound(t *testing.T) {
	q := newFakeQueries()

	svc := testService(q)

	_, err := svc.BookShipment(context.Background(), Actor{ID: 99}, validRequest())
	assert.ErrorIs(t, err, ErrWalletNotFound)
	assert.Empty(t, q.shipments)
}

func TestBookShipmentRacedDebitFailsClosed(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "5000.00")
	q.raceDebit = true

	svc := testService(q)

	// The balance read sees 5000.00, but a concurrent booking drains the
	// wallet before our debit lands. The guarded UPDATE is the authority:
	// the loser gets insufficient funds, never a second spend.
	receipt, err := svc.BookShipment(context.Background(), Actor{ID: 7}, validRequest())
	require.Error(t, err)
	assert.Nil(t, receipt)

	var insufficient *InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))

	assert.Empty(t, q.shipments)
	assert.Empty(t, q.ledger)
	assert.Equal(t, "5000.00", q.wallets[q.walletsOwner[7]].Balance)
}

func TestBookShipmentInsertRaceSurfacesTrackingConflict(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "5000.00")
	q.raceInsert = true

	svc := testService(q)

	_, err := svc.BookShipment(context.Background(), Actor{ID: 7}, validRequest())
	assert.ErrorIs(t, err, ErrTrackingConflict)

	// The discarded candidate is never reused and nothing commits.
	assert.Empty(t, q.shipments)
	assert.Empty(t, q.ledger)
	assert.Equal(t, "5000.00", q.wallets[q.walletsOwner[7]].Balance)
}

func TestBookShipmentTrackingExhaustion(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "5000.00")
	q.alwaysCollide = true

	svc := testService(q)

	_, err := svc.BookShipment(context.Background(), Actor{ID: 7}, validRequest())
	assert.ErrorIs(t, err, ErrTrackingExhausted)

	// The failed attempt rolls back completely.
	assert.Empty(t, q.shipments)
	assert.Empty(t, q.ledger)
	assert.Equal(t, "5000.00", q.wallets[q.walletsOwner[7]].Balance)
}

func TestBookShipmentRejectsBadInput(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "5000.00")

	svc := testService(q)

	cases := []struct {
		name   string
		mutate func(r *BookingRequest)
	}{
		{"zero weight", func(r *BookingRequest) { r.WeightKg = decimal.Zero }},
		{"negative weight", func(r *BookingRequest) { r.WeightKg = decimal.NewFromInt(-1) }},
		{"unknown service type", func(r *BookingRequest) { r.ServiceType = "overnight" }},
		{"bad phone", func(r *BookingRequest) { r.SenderDetails.Phone = "0801" }},
		{"bad country", func(r *BookingRequest) { r.RecipientDetails.Country = "Nigeria" }},
		{"missing name", func(r *BookingRequest) { r.SenderDetails.Name = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.BookShipment(context.Background(), Actor{ID: 7}, req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// No side effects from any rejected request.
	assert.Empty(t, q.shipments)
	assert.Equal(t, "5000.00", q.wallets[q.walletsOwner[7]].Balance)
}

func TestBookShipmentFragileSurcharge(t *testing.T) {
	q := newFakeQueries()
	q.addWallet(7, "10000.00")

	svc := testService(q)

	req := validRequest()
	req.ServiceType = shipment.ServiceExpress
	req.Fragile = true

	// express 2kg: 3000 + 2*600 = 4200, +10% fragile = 4620.00
	receipt, err := svc.BookShipment(context.Background(), Actor{ID: 7}, req)
	require.NoError(t, err)
	assert.Equal(t, "4620.00", receipt.PriceAmount.StringFixed(2))
	assert.Equal(t, "5380.00", receipt.NewBalance.StringFixed(2))
}
