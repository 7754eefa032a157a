package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SwiftShip/SwiftShip-Backend/utils"
)

type PlunkConfig struct {
	PlunkApiKey  string `mapstructure:"PLUNK_API_KEY"`
	PlunkBaseUrl string `mapstructure:"PLUNK_BASE_URL"`
}

// Plunk sends transactional email through the Plunk HTTP API.
type Plunk struct {
	HttpClient *http.Client
	Config     *PlunkConfig
}

func NewPlunk() *Plunk {
	var c PlunkConfig
	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	return &Plunk{
		HttpClient: &http.Client{Timeout: time.Second * 30},
		Config:     &c,
	}
}

type EmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *Plunk) makeRequest(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.Config.PlunkBaseUrl+endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.Config.PlunkApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, errors.New(string(respBody))
	}

	return respBody, nil
}

func (s *Plunk) SendEmail(ctx context.Context, to, subject, body string) error {
	email := EmailRequest{
		To:      to,
		Subject: subject,
		Body:    body,
	}

	_, err := s.makeRequest(ctx, "POST", "/send", email)
	return err
}

func (s *Plunk) Name() string { return "plunk-email" }

func (s *Plunk) SendBookingConfirmation(ctx context.Context, n BookingNotification) error {
	if n.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Your shipment %s is booked", n.TrackingNumber)
	body := fmt.Sprintf(
		"Hello %s,<br/><br/>Your shipment has been booked and NGN %s charged to your wallet.<br/>"+
			"Track it any time at <a href=%q>%s</a>.<br/><br/>SwiftShip",
		n.RecipientName, n.AmountCharged, n.TrackingURL, n.TrackingNumber,
	)

	return s.SendEmail(ctx, n.Email, subject, body)
}
