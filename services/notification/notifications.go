package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/SwiftShip/SwiftShip-Backend/services/monitoring/logging"
)

// BookingNotification carries everything a channel needs to tell a customer
// their shipment is booked.
type BookingNotification struct {
	Email          string
	Phone          string
	RecipientName  string
	TrackingNumber string
	TrackingURL    string
	AmountCharged  string
}

// Channel is a single delivery mechanism. Channels are best effort: a failed
// send is logged and forgotten, never retried and never surfaced to the
// booking caller.
type Channel interface {
	Name() string
	SendBookingConfirmation(ctx context.Context, n BookingNotification) error
}

type Dispatcher struct {
	channels []Channel
	logger   *logging.Logger
}

func NewDispatcher(logger *logging.Logger, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   logger,
	}
}

// DispatchBookingConfirmation fans the notification out to every channel in
// the background. The caller's context is not reused because the booking
// request may complete (and its context be cancelled) before sends finish.
func (d *Dispatcher) DispatchBookingConfirmation(n BookingNotification) {
	for _, ch := range d.channels {
		go func(ch Channel) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := ch.SendBookingConfirmation(ctx, n); err != nil {
				d.logger.Error(fmt.Sprintf("notification via %s failed for %s: %v", ch.Name(), n.TrackingNumber, err))
			}
		}(ch)
	}
}
