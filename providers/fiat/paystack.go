package fiat

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SwiftShip/SwiftShip-Backend/providers"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
)

type PaystackProvider struct {
	providers.BaseProvider
	config *FiatConfig
}

type FiatConfig struct {
	FiatProviderName    string `mapstructure:"FIAT_PROVIDER_NAME"`
	FiatProviderKey     string `mapstructure:"PAYSTACK_KEY"`
	FiatProviderBaseUrl string `mapstructure:"PAYSTACK_BASE_URL"`
	CallbackURL         string `mapstructure:"PAYSTACK_CALLBACK_URL"`
}

func NewFiatProvider() *PaystackProvider {

	var c FiatConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	return &PaystackProvider{
		BaseProvider: providers.BaseProvider{
			Name:    c.FiatProviderName,
			BaseURL: c.FiatProviderBaseUrl,
			APIKey:  c.FiatProviderKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
		},
		config: &c,
	}
}

// InitializeTransaction opens a hosted checkout for a wallet top-up. The
// wallet id rides along in the metadata so the webhook can route the credit.
func (p *PaystackProvider) InitializeTransaction(email string, amountKobo int64, reference string, walletID string) (*InitializedTransaction, error) {
	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("unexpected base url: %v", err.Error())
	}

	// Path params
	base.Path += "transaction/initialize"

	request := InitializeTransactionRequest{
		Email:       email,
		Amount:      amountKobo,
		Reference:   reference,
		Currency:    "NGN",
		CallbackURL: p.config.CallbackURL,
		Metadata: TransactionMetadata{
			WalletID: walletID,
		},
	}

	resp, err := p.MakeRequest("POST", base.String(), request, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Check the status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	// Decode the response body
	var response Response[InitializedTransaction]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	return &response.Data, nil
}

func (p *PaystackProvider) VerifyTransaction(reference string) (*VerifiedTransaction, error) {
	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("unexpected base url: %v", err.Error())
	}

	// Path params
	base.Path += "transaction/verify/" + url.PathEscape(reference)

	resp, err := p.MakeRequest("GET", base.String(), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Check the status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	// Decode the response body
	var response Response[VerifiedTransaction]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	return &response.Data, nil
}

// ValidateWebhookSignature checks the x-paystack-signature header against an
// HMAC-SHA512 of the raw event body keyed with the secret key.
func ValidateWebhookSignature(body []byte, signature string, secret string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (p *PaystackProvider) ValidateWebhookSignature(body []byte, signature string) bool {
	return ValidateWebhookSignature(body, signature, p.APIKey)
}
