package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/egypay/fawaterak_backend/config"
	"github.com/egypay/fawaterak_backend/models"
)

func newTestService(apiKey, providerKey string) *FawaterakService {
	return NewFawaterakService(config.FawaterakConfig{
		APIKey:      apiKey,
		BaseURL:     "http://gateway.invalid",
		ProviderKey: providerKey,
	}, nil)
}

func TestGenerateHashKeyForIFrame(t *testing.T) {
	svc := newTestService("secret-key", "provider-1")

	got := svc.GenerateHashKeyForIFrame("shop.example.com")

	// HMAC-SHA256 over the canonical Domain/ProviderKey string, keyed with
	// the API key, lowercase hex.
	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write([]byte("Domain=shop.example.com&ProviderKey=provider-1"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)

	assert.Len(t, got, sha256.Size*2)
	assert.Equal(t, got, svc.GenerateHashKeyForIFrame("shop.example.com"), "signing must be deterministic")
}

func TestHashKeySensitivity(t *testing.T) {
	svc := newTestService("secret-key", "provider-1")
	base := svc.GenerateHashKeyForIFrame("shop.example.com")

	assert.NotEqual(t, base, svc.GenerateHashKeyForIFrame("evil.example.com"), "changing a field must change the signature")

	other := newTestService("other-key", "provider-1")
	assert.NotEqual(t, base, other.GenerateHashKeyForIFrame("shop.example.com"), "changing the secret must change the signature")
}

func TestVerifyWebhookRoundTrip(t *testing.T) {
	svc := newTestService("secret-key", "provider-1")

	webhook := &models.PaidWebhook{
		InvoiceID:     1100153,
		InvoiceKey:    "InvKeyYzRm0Pa6H",
		PaymentMethod: "Fawry",
	}
	webhook.HashKey = svc.hashKeyForPaidWebhook(webhook.InvoiceID, webhook.InvoiceKey, webhook.PaymentMethod)

	assert.True(t, svc.VerifyWebhook(webhook))

	t.Run("mutated invoice id fails", func(t *testing.T) {
		tampered := *webhook
		tampered.InvoiceID++
		assert.False(t, svc.VerifyWebhook(&tampered))
	})

	t.Run("mutated payment method fails", func(t *testing.T) {
		tampered := *webhook
		tampered.PaymentMethod = "Card"
		assert.False(t, svc.VerifyWebhook(&tampered))
	})

	t.Run("empty signature fails", func(t *testing.T) {
		tampered := *webhook
		tampered.HashKey = ""
		assert.False(t, svc.VerifyWebhook(&tampered))
	})
}

func TestVerifyCancelTransactionRoundTrip(t *testing.T) {
	svc := newTestService("secret-key", "provider-1")

	tx := &models.CancelTransaction{
		ReferenceID:   "ref-42",
		PaymentMethod: "Meeza Wallet",
	}
	tx.HashKey = svc.hashKeyForCancelTransaction(tx.ReferenceID, tx.PaymentMethod)

	assert.True(t, svc.VerifyCancelTransaction(tx))

	tampered := *tx
	tampered.ReferenceID = "ref-43"
	assert.False(t, svc.VerifyCancelTransaction(&tampered))
}

func TestVerifyAPIKey(t *testing.T) {
	svc := newTestService("secret-key", "provider-1")

	assert.True(t, svc.VerifyAPIKey("secret-key"))
	assert.False(t, svc.VerifyAPIKey("wrong-key"))
	assert.False(t, svc.VerifyAPIKey(""))
}
