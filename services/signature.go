package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/egypay/fawaterak_backend/models"
)

// hashKey computes the HMAC-SHA256 of the canonical query string, keyed with
// the merchant API key, rendered as lowercase hex. The field order inside
// queryParam is part of the protocol and must not be rearranged.
func (s *FawaterakService) hashKey(queryParam string) string {
	mac := hmac.New(sha256.New, []byte(s.apiKey))
	mac.Write([]byte(queryParam))
	return hex.EncodeToString(mac.Sum(nil))
}

// GenerateHashKeyForIFrame produces the signature embedded when the payment
// iframe is hosted on the given domain
func (s *FawaterakService) GenerateHashKeyForIFrame(domain string) string {
	return s.hashKey(fmt.Sprintf("Domain=%s&ProviderKey=%s", domain, s.providerKey))
}

func (s *FawaterakService) hashKeyForPaidWebhook(invoiceID int64, invoiceKey, paymentMethod string) string {
	return s.hashKey(fmt.Sprintf("InvoiceId=%d&InvoiceKey=%s&PaymentMethod=%s", invoiceID, invoiceKey, paymentMethod))
}

func (s *FawaterakService) hashKeyForCancelTransaction(referenceID, paymentMethod string) string {
	return s.hashKey(fmt.Sprintf("referenceId=%s&PaymentMethod=%s", referenceID, paymentMethod))
}

// VerifyWebhook reports whether a paid notification carries the signature
// recomputed from its own fields
func (s *FawaterakService) VerifyWebhook(webhook *models.PaidWebhook) bool {
	expected := s.hashKeyForPaidWebhook(webhook.InvoiceID, webhook.InvoiceKey, webhook.PaymentMethod)
	return hmac.Equal([]byte(expected), []byte(webhook.HashKey))
}

// VerifyCancelTransaction reports whether a cancel/fail notification carries
// the signature recomputed from its own fields
func (s *FawaterakService) VerifyCancelTransaction(tx *models.CancelTransaction) bool {
	expected := s.hashKeyForCancelTransaction(tx.ReferenceID, tx.PaymentMethod)
	return hmac.Equal([]byte(expected), []byte(tx.HashKey))
}

// VerifyAPIKey reports whether the supplied key matches the merchant API key
func (s *FawaterakService) VerifyAPIKey(apiKey string) bool {
	return hmac.Equal([]byte(apiKey), []byte(s.apiKey))
}
