package booking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound = fmt.Errorf("wallet not found")

	// ErrTrackingExhausted means the bounded allocation loop never found a
	// free tracking number. Fatal for this attempt; the caller may retry.
	ErrTrackingExhausted = fmt.Errorf("could not allocate a unique tracking number")

	// ErrTrackingConflict means a concurrent booking committed our candidate
	// between the availability check and the insert. The unique index is the
	// authority; the caller may retry.
	ErrTrackingConflict = fmt.Errorf("tracking number allocation lost a race, please retry")

	ErrValidation = fmt.Errorf("invalid booking request")
)

// InsufficientFundsError carries the exact shortfall so the caller can tell
// the user how much to top up.
type InsufficientFundsError struct {
	Required decimal.Decimal
	Balance  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %s, have %s", e.Required, e.Balance)
}
