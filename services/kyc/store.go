package kyc

import (
	"context"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
)

// Queries are the storage operations verification records need. *db.Store
// satisfies this; tests substitute an in-memory map.
type Queries interface {
	GetKYCByUserID(ctx context.Context, userID int64) (db.KycRecord, error)
	CreateKYCRecord(ctx context.Context, arg db.CreateKYCRecordParams) (db.KycRecord, error)
	ReopenKYCRecord(ctx context.Context, arg db.ReopenKYCRecordParams) (db.KycRecord, error)
	UpdateKYCStatus(ctx context.Context, arg db.UpdateKYCStatusParams) (db.KycRecord, error)
	ListKYCByStatus(ctx context.Context, arg db.ListKYCByStatusParams) ([]db.KycRecord, error)
}
