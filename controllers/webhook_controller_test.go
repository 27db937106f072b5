package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egypay/fawaterak_backend/config"
	"github.com/egypay/fawaterak_backend/services"
)

const testAPIKey = "webhook-test-key"

func newWebhookController() *WebhookController {
	payments := services.NewFawaterakService(config.FawaterakConfig{
		APIKey:      testAPIKey,
		BaseURL:     "http://gateway.invalid",
		ProviderKey: "provider-1",
	}, nil)
	return NewWebhookController(payments)
}

// signFields recomputes the gateway's keyed hash outside the service, pinning
// the canonical field order of the protocol.
func signFields(queryParam string) string {
	mac := hmac.New(sha256.New, []byte(testAPIKey))
	mac.Write([]byte(queryParam))
	return hex.EncodeToString(mac.Sum(nil))
}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestWebhookPaid(t *testing.T) {
	wc := newWebhookController()

	hash := signFields("InvoiceId=1100153&InvoiceKey=InvKeyYzRm0Pa6H&PaymentMethod=Fawry")
	valid := fmt.Sprintf(`{"invoice_id":1100153,"invoice_key":"InvKeyYzRm0Pa6H","payment_method":"Fawry","hashKey":%q}`, hash)

	t.Run("valid signature is accepted", func(t *testing.T) {
		rec := postJSON(t, wc.WebhookPaid, "/api/fawaterak/webhooks/paid_json", valid)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("tampered field is rejected", func(t *testing.T) {
		tampered := fmt.Sprintf(`{"invoice_id":9999999,"invoice_key":"InvKeyYzRm0Pa6H","payment_method":"Fawry","hashKey":%q}`, hash)
		rec := postJSON(t, wc.WebhookPaid, "/api/fawaterak/webhooks/paid_json", tampered)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing signature is rejected", func(t *testing.T) {
		rec := postJSON(t, wc.WebhookPaid, "/api/fawaterak/webhooks/paid_json",
			`{"invoice_id":1100153,"invoice_key":"InvKeyYzRm0Pa6H","payment_method":"Fawry"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestWebhookCancelAndFailed(t *testing.T) {
	wc := newWebhookController()

	hash := signFields("referenceId=ref-42&PaymentMethod=Meeza Wallet")
	valid := fmt.Sprintf(`{"referenceId":"ref-42","payment_method":"Meeza Wallet","hashKey":%q}`, hash)

	t.Run("cancel with valid signature", func(t *testing.T) {
		rec := postJSON(t, wc.WebhookCancel, "/api/fawaterak/webhooks/cancel", valid)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failed with valid signature", func(t *testing.T) {
		rec := postJSON(t, wc.WebhookFailed, "/api/fawaterak/webhooks/failed", valid)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong reference id is rejected", func(t *testing.T) {
		tampered := fmt.Sprintf(`{"referenceId":"ref-43","payment_method":"Meeza Wallet","hashKey":%q}`, hash)
		rec := postJSON(t, wc.WebhookCancel, "/api/fawaterak/webhooks/cancel", tampered)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid webhook signature", resp["message"])
	})
}
