package payment

import "fmt"

var (
	// ErrWalletIntegrity means a validated payment references a wallet we do
	// not have. Money is owed, so the event must not be swallowed; failing
	// the unit makes the provider redeliver.
	ErrWalletIntegrity = fmt.Errorf("payment references an unknown wallet")

	ErrProviderUnavailable = fmt.Errorf("payment provider is unavailable")
)

// AmountOutOfBoundsError rejects deposits outside the configured window.
type AmountOutOfBoundsError struct {
	AmountKobo int64
	MinKobo    int64
	MaxKobo    int64
}

func (e *AmountOutOfBoundsError) Error() string {
	return fmt.Sprintf("deposit of %d kobo is outside the allowed range [%d, %d]", e.AmountKobo, e.MinKobo, e.MaxKobo)
}
