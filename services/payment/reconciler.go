package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	"github.com/SwiftShip/SwiftShip-Backend/providers/fiat"
	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
	"github.com/SwiftShip/SwiftShip-Backend/services/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome classifies a webhook delivery. Every Dropped* outcome and
// OutcomeDuplicate is acknowledged with a 2xx so the provider stops
// redelivering; only a non-nil error makes the handler answer 5xx.
type Outcome string

const (
	OutcomeCredited           Outcome = "credited"
	OutcomeDuplicate          Outcome = "duplicate"
	OutcomeDroppedBadSig      Outcome = "dropped_bad_signature"
	OutcomeDroppedMalformed   Outcome = "dropped_malformed"
	OutcomeDroppedIgnored     Outcome = "dropped_ignored_event"
	OutcomeDroppedNotSuccess  Outcome = "dropped_not_successful"
	OutcomeDroppedTerminal    Outcome = "dropped_terminal_transaction"
)

const chargeSuccessEvent = "charge.success"

// Reconciler applies Paystack charge confirmations to the ledger exactly
// once, no matter how many times the provider delivers them.
type Reconciler struct {
	store  Store
	secret string
	logger *logging.Logger
}

func NewReconciler(store Store, webhookSecret string, logger *logging.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		secret: webhookSecret,
		logger: logger,
	}
}

// ReconcileDeposit verifies and applies one webhook delivery. The error is
// nil for everything the provider should not retry, including forgeries and
// garbage payloads; it is non-nil only when a validated event failed against
// the store and redelivery is the recovery path.
func (r *Reconciler) ReconcileDeposit(ctx context.Context, rawEvent []byte, signature string) (Outcome, error) {
	if !fiat.ValidateWebhookSignature(rawEvent, signature, r.secret) {
		// Treated as an attack signal, not an error: acknowledging stops
		// the sender probing for a retry loop.
		r.logger.Warn("webhook signature mismatch, possible forgery")
		return OutcomeDroppedBadSig, nil
	}

	var event fiat.WebhookEvent
	if err := json.Unmarshal(rawEvent, &event); err != nil {
		r.logger.Warn(fmt.Sprintf("unparseable webhook payload: %v", err))
		return OutcomeDroppedMalformed, nil
	}

	if event.Event != chargeSuccessEvent {
		return OutcomeDroppedIgnored, nil
	}

	if event.Data.Status != "success" {
		return OutcomeDroppedNotSuccess, nil
	}

	if event.Data.Reference == "" || event.Data.Amount <= 0 {
		r.logger.Warn("charge.success event missing reference or amount")
		return OutcomeDroppedMalformed, nil
	}

	walletID, err := uuid.Parse(event.Data.Metadata.WalletID)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("charge.success event carries bad wallet id %q", event.Data.Metadata.WalletID))
		return OutcomeDroppedMalformed, nil
	}

	amount := decimal.NewFromInt(event.Data.Amount).Div(decimal.NewFromInt(100))

	outcome := OutcomeCredited
	err = r.store.ExecSerializableTx(ctx, func(q Queries) error {
		existing, err := q.GetTransactionByReferenceForUpdate(ctx, event.Data.Reference)
		if err == nil {
			switch existing.Status {
			case transaction.StatusSuccess:
				// Already applied. At-most-once financial effect despite
				// at-least-once delivery: commit nothing.
				outcome = OutcomeDuplicate
				return nil
			case transaction.StatusFailed:
				r.logger.Error(fmt.Sprintf("charge.success for reference %s but transaction is FAILED", event.Data.Reference))
				outcome = OutcomeDroppedTerminal
				return nil
			}

			if err := r.creditWallet(ctx, q, existing.WalletID, amount); err != nil {
				return err
			}
			_, err = q.MarkTransactionSuccess(ctx, existing.ID)
			return err
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("look up transaction: %w", err)
		}

		// No PENDING row: the deposit was initiated elsewhere or the row was
		// lost. The event is authenticated, so the credit still lands, with
		// a fresh SUCCESS row keyed by the provider reference.
		if err := r.creditWallet(ctx, q, walletID, amount); err != nil {
			return err
		}

		_, err = q.CreateWalletTransaction(ctx, db.CreateWalletTransactionParams{
			WalletID:    walletID,
			Type:        transaction.TypeDeposit,
			Amount:      amount.StringFixed(2),
			Status:      transaction.StatusSuccess,
			Reference:   event.Data.Reference,
			Description: "Wallet top-up via Paystack",
		})
		return err
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

func (r *Reconciler) creditWallet(ctx context.Context, q Queries, walletID uuid.UUID, amount decimal.Decimal) error {
	_, err := q.GetWalletByIDForUpdate(ctx, walletID)
	if err == sql.ErrNoRows {
		return ErrWalletIntegrity
	} else if err != nil {
		return fmt.Errorf("load wallet: %w", err)
	}

	_, err = q.CreditWalletBalance(ctx, db.CreditWalletBalanceParams{
		Amount:   amount.StringFixed(2),
		WalletID: walletID,
	})
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}
	return nil
}
