package shipment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/redis"
	"github.com/google/uuid"
)

type ShipmentService struct {
	store  *db.Store
	logger *logging.Logger
	cache  *redis.RedisService
}

func NewShipmentService(store *db.Store, logger *logging.Logger) *ShipmentService {
	return &ShipmentService{
		store:  store,
		logger: logger,
	}
}

func NewShipmentServiceWithCache(store *db.Store, logger *logging.Logger, cache *redis.RedisService) *ShipmentService {
	return &ShipmentService{
		store:  store,
		logger: logger,
		cache:  cache,
	}
}

func (s *ShipmentService) GetByID(ctx context.Context, id uuid.UUID) (*ShipmentModel, error) {
	db_shipment, err := s.store.GetShipmentByID(ctx, id)
	if err == sql.ErrNoRows {
		return nil, ErrShipmentNotFound
	} else if err != nil {
		return nil, err
	}
	return ToShipmentModel(db_shipment)
}

func (s *ShipmentService) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*ShipmentModel, error) {
	db_shipments, err := s.store.ListShipmentsByOwner(ctx, db.ListShipmentsByOwnerParams{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, err
	}

	shipments := make([]*ShipmentModel, 0, len(db_shipments))
	for _, row := range db_shipments {
		m, err := ToShipmentModel(row)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, m)
	}
	return shipments, nil
}

// Track resolves the public timeline for a tracking number. The format is
// validated before any store round trip so junk input never hits Postgres.
func (s *ShipmentService) Track(ctx context.Context, trackingNumber string) (*TimelineModel, error) {
	if !IsValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTracking
	}
	// Stored numbers are upper case; the validator accepts either.
	trackingNumber = strings.ToUpper(trackingNumber)

	if s.cache != nil {
		var cached TimelineModel
		hit, err := s.cache.GetCachedTimeline(ctx, trackingNumber, &cached)
		if err != nil {
			s.logger.Error(fmt.Sprintf("tracking cache read failed: %v", err))
		} else if hit {
			return &cached, nil
		}
	}

	db_shipment, err := s.store.GetShipmentByTracking(ctx, trackingNumber)
	if err == sql.ErrNoRows {
		return nil, ErrShipmentNotFound
	} else if err != nil {
		return nil, err
	}

	timeline := ToTimelineModel(db_shipment)

	if s.cache != nil {
		if err := s.cache.CacheTimeline(ctx, trackingNumber, timeline); err != nil {
			s.logger.Error(fmt.Sprintf("tracking cache write failed: %v", err))
		}
	}

	return timeline, nil
}

// UpdateStatus applies an admin status change inside a transaction so the
// progression check and the write see the same row. delivered_at is set by
// the store exactly once, on the first transition into DELIVERED.
func (s *ShipmentService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*ShipmentModel, error) {
	if _, ok := statusOrder[newStatus]; !ok && newStatus != StatusCancelled {
		return nil, ErrInvalidStatus
	}

	var updated db.Shipment
	err := s.store.ExecTx(ctx, func(q *db.Queries) error {
		current, err := q.GetShipmentByID(ctx, id)
		if err == sql.ErrNoRows {
			return ErrShipmentNotFound
		} else if err != nil {
			return err
		}

		if err := CanTransition(current.Status, newStatus); err != nil {
			return err
		}

		updated, err = q.UpdateShipmentStatus(ctx, db.UpdateShipmentStatusParams{
			Status: newStatus,
			ID:     id,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateTimeline(ctx, updated.TrackingNumber); err != nil {
			s.logger.Error(fmt.Sprintf("tracking cache invalidation failed: %v", err))
		}
	}

	return ToShipmentModel(updated)
}
