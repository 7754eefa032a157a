package kyc

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/providers/storage"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	gocache "github.com/patrickmn/go-cache"
)

// KYCService manages merchant verification records. The go-cache override map
// exists for demo/staging runs without a reviewer in the loop: an approval put
// there is ephemeral and disappears on restart, which is the point.
type KYCService struct {
	store     Queries
	storageP  *storage.S3Provider
	logger    *logging.Logger
	overrides *gocache.Cache
}

type SubmitRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	RCNumber     string `json:"rc_number" binding:"required"`
	DocumentKey  string `json:"document_key" binding:"required"`
}

func NewKYCService(store Queries, storageP *storage.S3Provider, logger *logging.Logger) *KYCService {
	return &KYCService{
		store:     store,
		storageP:  storageP,
		logger:    logger,
		overrides: gocache.New(gocache.NoExpiration, 0),
	}
}

// Submit records a merchant's verification request. One record per user; a
// resubmission is only allowed after a rejection, by reopening the old row
// with the freshly submitted details.
func (s *KYCService) Submit(ctx context.Context, userID int64, req SubmitRequest) (*KYCModel, error) {
	existing, err := s.store.GetKYCByUserID(ctx, userID)
	if err == nil {
		if existing.Status == StatusRejected {
			updated, uerr := s.store.ReopenKYCRecord(ctx, db.ReopenKYCRecordParams{
				UserID:       userID,
				BusinessName: req.BusinessName,
				RcNumber:     req.RCNumber,
				DocumentKey:  req.DocumentKey,
			})
			if uerr != nil {
				return nil, fmt.Errorf("could not reopen verification: %w", uerr)
			}
			return ToKYCModel(updated), nil
		}
		return nil, ErrAlreadySubmitted
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	record, err := s.store.CreateKYCRecord(ctx, db.CreateKYCRecordParams{
		UserID:       userID,
		BusinessName: req.BusinessName,
		RcNumber:     req.RCNumber,
		DocumentKey:  req.DocumentKey,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create verification record: %w", err)
	}
	return ToKYCModel(record), nil
}

// Review applies an admin decision to a pending record.
func (s *KYCService) Review(ctx context.Context, userID int64, reviewerID int64, decision string) (*KYCModel, error) {
	if decision != StatusApproved && decision != StatusRejected {
		return nil, ErrInvalidDecision
	}

	record, err := s.store.GetKYCByUserID(ctx, userID)
	if err == sql.ErrNoRows {
		return nil, ErrKYCNotFound
	} else if err != nil {
		return nil, err
	}
	if record.Status != StatusPending {
		return nil, ErrAlreadyReviewed
	}

	updated, err := s.store.UpdateKYCStatus(ctx, db.UpdateKYCStatusParams{
		UserID: userID,
		Status: decision,
		ReviewedBy: sql.NullInt64{
			Int64: reviewerID,
			Valid: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not apply review: %w", err)
	}

	s.logger.Info(fmt.Sprintf("KYC for user %d reviewed as %s by admin %d", userID, decision, reviewerID))
	return ToKYCModel(updated), nil
}

func (s *KYCService) Get(ctx context.Context, userID int64) (*KYCModel, error) {
	record, err := s.store.GetKYCByUserID(ctx, userID)
	if err == sql.ErrNoRows {
		return nil, ErrKYCNotFound
	} else if err != nil {
		return nil, err
	}
	return ToKYCModel(record), nil
}

func (s *KYCService) ListPending(ctx context.Context, limit int32, offset int32) ([]*KYCModel, error) {
	records, err := s.store.ListKYCByStatus(ctx, db.ListKYCByStatusParams{
		Status: StatusPending,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	models := make([]*KYCModel, 0, len(records))
	for _, record := range records {
		models = append(models, ToKYCModel(record))
	}
	return models, nil
}

// IsApproved reports whether a merchant may book shipments. Ephemeral demo
// overrides are consulted first.
func (s *KYCService) IsApproved(ctx context.Context, userID int64) (bool, error) {
	if _, ok := s.overrides.Get(overrideKey(userID)); ok {
		return true, nil
	}

	record, err := s.store.GetKYCByUserID(ctx, userID)
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return record.Status == StatusApproved, nil
}

// SetDemoOverride marks a merchant approved until restart without touching
// the database. Not for production use.
func (s *KYCService) SetDemoOverride(userID int64) {
	s.overrides.Set(overrideKey(userID), true, gocache.NoExpiration)
	s.logger.Warn(fmt.Sprintf("ephemeral KYC override set for user %d; lost on restart", userID))
}

// PresignDocumentUpload returns a URL the merchant PUTs their incorporation
// document to, plus the key to send back in Submit.
func (s *KYCService) PresignDocumentUpload(userID int64, contentType string) (url string, key string, err error) {
	key = fmt.Sprintf("kyc/%d/document", userID)
	url, err = s.storageP.PresignUpload(key, contentType)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// PresignDocumentDownload returns a short-lived URL for a reviewer to read a
// submitted document.
func (s *KYCService) PresignDocumentDownload(documentKey string) (string, error) {
	return s.storageP.PresignDownload(documentKey)
}

func overrideKey(userID int64) string {
	return "kyc-override:" + strconv.FormatInt(userID, 10)
}
