package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/notification"
	"github.com/SwiftShip/SwiftShip-Backend/services/pricing"
	"github.com/SwiftShip/SwiftShip-Backend/services/shipment"
	"github.com/SwiftShip/SwiftShip-Backend/services/transaction"
	"github.com/SwiftShip/SwiftShip-Backend/services/wallet"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxTrackingAttempts bounds the allocation loop. Ten misses in a row against
// a 36^8 space means something is wrong with the store, not the dice.
const maxTrackingAttempts = 10

// Actor is the authenticated party booking the shipment. Contact fields feed
// the post-commit notification only.
type Actor struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

type BookingRequest struct {
	SenderDetails    shipment.PartyDetails `validate:"required"`
	RecipientDetails shipment.PartyDetails `validate:"required"`
	WeightKg         decimal.Decimal
	ServiceType      string `validate:"required,oneof=standard express"`
	Fragile          bool
	Notes            string
}

type BookingReceipt struct {
	ShipmentID     uuid.UUID       `json:"shipment_id"`
	TrackingNumber string          `json:"tracking_number"`
	PriceAmount    decimal.Decimal `json:"price_amount"`
	NewBalance     decimal.Decimal `json:"new_balance"`
}

type BookingService struct {
	store           Store
	oracle          pricing.Oracle
	notifier        *notification.Dispatcher
	logger          *logging.Logger
	validate        *validator.Validate
	trackingBaseURL string
}

func NewBookingService(store Store, oracle pricing.Oracle, notifier *notification.Dispatcher, logger *logging.Logger, trackingBaseURL string) *BookingService {
	return &BookingService{
		store:           store,
		oracle:          oracle,
		notifier:        notifier,
		logger:          logger,
		validate:        validator.New(),
		trackingBaseURL: trackingBaseURL,
	}
}

// BookShipment runs the wallet-funded booking as one atomic unit: load the
// wallet under lock, price the shipment, allocate a tracking number, insert
// the shipment, debit the wallet and write the ledger row. Any failed step
// rolls the whole unit back.
func (s *BookingService) BookShipment(ctx context.Context, actor Actor, req BookingRequest) (*BookingReceipt, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	var receipt BookingReceipt
	err := s.store.ExecSerializableTx(ctx, func(q Queries) error {
		// The wallet row is the point of mutual exclusion for this actor.
		// Booking never lazily creates one; a missing wallet in a paid flow
		// is the caller's problem, not ours.
		dbWallet, err := q.GetWalletByOwnerForUpdate(ctx, db.GetWalletByOwnerForUpdateParams{
			OwnerID:  actor.ID,
			Currency: wallet.DefaultCurrency,
		})
		if err == sql.ErrNoRows {
			return ErrWalletNotFound
		} else if err != nil {
			return fmt.Errorf("load wallet: %w", err)
		}

		balance, err := decimal.NewFromString(dbWallet.Balance)
		if err != nil {
			return fmt.Errorf("corrupt wallet balance: %w", err)
		}

		price, err := s.oracle.Quote(req.WeightKg, req.ServiceType, pricing.Flags{Fragile: req.Fragile})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		if balance.LessThan(price) {
			return &InsufficientFundsError{Required: price, Balance: balance}
		}

		trackingNumber, err := s.allocateTrackingNumber(ctx, q)
		if err != nil {
			return err
		}

		senderJSON, err := json.Marshal(req.SenderDetails)
		if err != nil {
			return fmt.Errorf("encode sender details: %w", err)
		}
		recipientJSON, err := json.Marshal(req.RecipientDetails)
		if err != nil {
			return fmt.Errorf("encode recipient details: %w", err)
		}

		dbShipment, err := q.CreateShipment(ctx, db.CreateShipmentParams{
			OwnerID:          actor.ID,
			TrackingNumber:   trackingNumber,
			Status:           shipment.StatusPending,
			ServiceType:      req.ServiceType,
			WeightKg:         req.WeightKg.StringFixed(2),
			PriceAmount:      price.StringFixed(2),
			SenderDetails:    senderJSON,
			RecipientDetails: recipientJSON,
			Notes:            req.Notes,
		})
		if db.IsUniqueViolation(err, "shipments_tracking_number_key") {
			// A concurrent booking committed this candidate after our
			// availability check. The constraint is authoritative; the
			// discarded candidate is never reused.
			return ErrTrackingConflict
		} else if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		// Guarded debit: the store re-checks balance >= price under the
		// row lock, so two bookings racing the same wallet can never both
		// pass against a stale balance.
		debited, err := q.DebitWalletBalance(ctx, db.DebitWalletBalanceParams{
			Amount:   price.StringFixed(2),
			WalletID: dbWallet.ID,
		})
		if err == sql.ErrNoRows {
			return &InsufficientFundsError{Required: price, Balance: balance}
		} else if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}

		_, err = q.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
			WalletID:    dbWallet.ID,
			Type:        transaction.TypeShipmentPayment,
			Amount:      price.Neg().StringFixed(2),
			Status:      transaction.StatusSuccess,
			Reference:   shipmentReference(dbShipment.ID),
			Description: fmt.Sprintf("Shipment %s", trackingNumber),
			ShipmentID:  uuid.NullUUID{UUID: dbShipment.ID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("create ledger entry: %w", err)
		}

		newBalance, err := decimal.NewFromString(debited.Balance)
		if err != nil {
			return fmt.Errorf("corrupt wallet balance after debit: %w", err)
		}

		receipt = BookingReceipt{
			ShipmentID:     dbShipment.ID,
			TrackingNumber: trackingNumber,
			PriceAmount:    price,
			NewBalance:     newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyBooked(actor, receipt)

	return &receipt, nil
}

func (s *BookingService) validateRequest(req BookingRequest) error {
	if req.WeightKg.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// allocateTrackingNumber draws candidates until one is free, bounded at
// maxTrackingAttempts. Exhaustion is a named fatal error, never a fallback
// to a non-unique number.
func (s *BookingService) allocateTrackingNumber(ctx context.Context, q Queries) (string, error) {
	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		candidate := shipment.GenerateTrackingNumber()

		taken, err := q.TrackingNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check tracking number: %w", err)
		}
		if !taken {
			return candidate, nil
		}

		s.logger.Warn(fmt.Sprintf("tracking number collision on %s (attempt %d)", candidate, attempt+1))
	}
	return "", ErrTrackingExhausted
}

// shipmentReference derives the ledger idempotency key from the shipment id,
// unique per shipment by construction.
func shipmentReference(shipmentID uuid.UUID) string {
	return fmt.Sprintf("SHP-%s", shipmentID)
}

// notifyBooked fires the confirmation after commit. Failures are logged by
// the dispatcher and never reach the booking caller.
func (s *BookingService) notifyBooked(actor Actor, receipt BookingReceipt) {
	if s.notifier == nil {
		return
	}

	s.notifier.DispatchBookingConfirmation(notification.BookingNotification{
		Email:          actor.Email,
		Phone:          actor.Phone,
		RecipientName:  actor.Name,
		TrackingNumber: receipt.TrackingNumber,
		TrackingURL:    fmt.Sprintf("%s/%s", s.trackingBaseURL, receipt.TrackingNumber),
		AmountCharged:  receipt.PriceAmount.StringFixed(2),
	})
}
