package fiat

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidateWebhookSignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"SWS-DEP-x","amount":50000}}`)

	assert.True(t, ValidateWebhookSignature(body, sign(body, secret), secret))
}

func TestValidateWebhookSignatureRejectsTampering(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"amount":50000}}`)
	signature := sign(body, secret)

	// Body changed after signing.
	tampered := []byte(`{"event":"charge.success","data":{"amount":9900000}}`)
	assert.False(t, ValidateWebhookSignature(tampered, signature, secret))

	// Signed with the wrong key.
	assert.False(t, ValidateWebhookSignature(body, sign(body, "other-secret"), secret))

	// Garbage headers.
	assert.False(t, ValidateWebhookSignature(body, "", secret))
	assert.False(t, ValidateWebhookSignature(body, "deadbeef", secret))
}
