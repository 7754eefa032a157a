package kyc

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueries struct {
	records map[int64]*db.KycRecord
	nextID  int64
}

func newFakeQueries() *fakeQueries {
	return &fakeQueries{records: make(map[int64]*db.KycRecord)}
}

func (f *fakeQueries) GetKYCByUserID(ctx context.Context, userID int64) (db.KycRecord, error) {
	record, ok := f.records[userID]
	if !ok {
		return db.KycRecord{}, sql.ErrNoRows
	}
	return *record, nil
}

func (f *fakeQueries) CreateKYCRecord(ctx context.Context, arg db.CreateKYCRecordParams) (db.KycRecord, error) {
	f.nextID++
	record := &db.KycRecord{
		ID:           f.nextID,
		UserID:       arg.UserID,
		BusinessName: arg.BusinessName,
		RcNumber:     arg.RcNumber,
		DocumentKey:  arg.DocumentKey,
		Status:       StatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.records[arg.UserID] = record
	return *record, nil
}

func (f *fakeQueries) ReopenKYCRecord(ctx context.Context, arg db.ReopenKYCRecordParams) (db.KycRecord, error) {
	record, ok := f.records[arg.UserID]
	if !ok {
		return db.KycRecord{}, sql.ErrNoRows
	}
	record.BusinessName = arg.BusinessName
	record.RcNumber = arg.RcNumber
	record.DocumentKey = arg.DocumentKey
	record.Status = StatusPending
	record.ReviewedBy = sql.NullInt64{}
	record.UpdatedAt = time.Now()
	return *record, nil
}

func (f *fakeQueries) UpdateKYCStatus(ctx context.Context, arg db.UpdateKYCStatusParams) (db.KycRecord, error) {
	record, ok := f.records[arg.UserID]
	if !ok {
		return db.KycRecord{}, sql.ErrNoRows
	}
	record.Status = arg.Status
	record.ReviewedBy = arg.ReviewedBy
	record.UpdatedAt = time.Now()
	return *record, nil
}

func (f *fakeQueries) ListKYCByStatus(ctx context.Context, arg db.ListKYCByStatusParams) ([]db.KycRecord, error) {
	matched := []db.KycRecord{}
	for _, record := range f.records {
		if record.Status == arg.Status {
			matched = append(matched, *record)
		}
	}
	return matched, nil
}

func testService(q *fakeQueries) *KYCService {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return NewKYCService(q, nil, &logging.Logger{Logger: l})
}

func submitRequest() SubmitRequest {
	return SubmitRequest{
		BusinessName: "Obi Logistics Ltd",
		RCNumber:     "RC123456",
		DocumentKey:  "kyc/7/document",
	}
}

func TestSubmitCreatesPendingRecord(t *testing.T) {
	q := newFakeQueries()
	svc := testService(q)

	record, err := svc.Submit(context.Background(), 7, submitRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, record.Status)
	assert.Equal(t, "Obi Logistics Ltd", record.BusinessName)
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	q := newFakeQueries()
	svc := testService(q)

	_, err := svc.Submit(context.Background(), 7, submitRequest())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), 7, submitRequest())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitAfterRejectionCarriesNewDetails(t *testing.T) {
	q := newFakeQueries()
	svc := testService(q)

	_, err := svc.Submit(context.Background(), 7, submitRequest())
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), 7, 1, StatusRejected)
	require.NoError(t, err)

	// The merchant fixes their paperwork and tries again with different
	// details; the reopened record must hold the new ones, not the old.
	resubmit := SubmitRequest{
		BusinessName: "Obi Logistics Nigeria Ltd",
		RCNumber:     "RC654321",
		DocumentKey:  "kyc/7/document-v2",
	}
	record, err := svc.Submit(context.Background(), 7, resubmit)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, record.Status)
	assert.Equal(t, "Obi Logistics Nigeria Ltd", record.BusinessName)
	assert.Equal(t, "RC654321", record.RCNumber)
	assert.Equal(t, "kyc/7/document-v2", record.DocumentKey)
	assert.Nil(t, record.ReviewedBy)
}

func TestReviewRejectsSecondDecision(t *testing.T) {
	q := newFakeQueries()
	svc := testService(q)

	_, err := svc.Submit(context.Background(), 7, submitRequest())
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), 7, 1, StatusApproved)
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), 7, 2, StatusRejected)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}
