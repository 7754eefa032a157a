package notification

import (
	"context"
	"fmt"

	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioConfig struct {
	TwilioAccountSid string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsApp   string `mapstructure:"TWILIO_WHATSAPP_FROM"`
}

// WhatsApp delivers booking confirmations over Twilio's WhatsApp channel.
type WhatsApp struct {
	client *twilio.RestClient
	config *TwilioConfig
}

func NewWhatsApp() *WhatsApp {
	var c TwilioConfig
	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: c.TwilioAccountSid,
		Password: c.TwilioAuthToken,
	})

	return &WhatsApp{
		client: client,
		config: &c,
	}
}

func (w *WhatsApp) Name() string { return "twilio-whatsapp" }

func (w *WhatsApp) SendBookingConfirmation(ctx context.Context, n BookingNotification) error {
	if n.Phone == "" {
		return nil
	}

	body := fmt.Sprintf(
		"SwiftShip: your shipment %s is booked. Track it here: %s",
		n.TrackingNumber, n.TrackingURL,
	)

	params := &openapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + w.config.TwilioWhatsApp)
	params.SetTo("whatsapp:" + n.Phone)
	params.SetBody(body)

	_, err := w.client.Api.CreateMessage(params)
	return err
}
