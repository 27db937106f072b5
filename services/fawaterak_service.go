package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/egypay/fawaterak_backend/config"
	"github.com/egypay/fawaterak_backend/models"
	"github.com/egypay/fawaterak_backend/utils"
)

// FawaterakService handles interactions with the Fawaterak API
type FawaterakService struct {
	apiKey      string
	baseURL     string
	providerKey string
	client      *http.Client
	cache       *MethodCache
}

// NewFawaterakService creates a new Fawaterak service instance. The cache is
// optional; pass nil to fetch the payment-method list fresh on every call.
func NewFawaterakService(cfg config.FawaterakConfig, cache *MethodCache) *FawaterakService {
	return &FawaterakService{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		providerKey: cfg.ProviderKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
	}
}

// doRequest performs an HTTP request to the Fawaterak API and returns the raw
// response body together with the status code. The error covers transport and
// serialization problems only; gateway rejections come back as the status.
func (s *FawaterakService) doRequest(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// validateInvoice rejects malformed invoice requests before any network call
func validateInvoice(invoice *models.InvoiceRequest) error {
	if invoice == nil {
		return errors.New("invoice request is required")
	}
	if invoice.Customer.FirstName == "" || invoice.Customer.LastName == "" {
		return errors.New("customer first and last name are required")
	}
	if len(invoice.CartItems) == 0 {
		return errors.New("cart must contain at least one item")
	}
	for _, item := range invoice.CartItems {
		if item.Price <= 0 {
			return fmt.Errorf("cart item %q must have a positive price", item.Name)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("cart item %q must have a quantity of at least 1", item.Name)
		}
	}
	if len(invoice.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}
	return nil
}

// CreateInvoiceLink submits the invoice to Fawaterak and returns the hosted
// payment link. A nil result with a nil error means the gateway rejected the
// call or was unreachable; there is no retry.
func (s *FawaterakService) CreateInvoiceLink(ctx context.Context, invoice *models.InvoiceRequest) (*models.InvoiceData, error) {
	if err := validateInvoice(invoice); err != nil {
		return nil, err
	}

	body, status, err := s.doRequest(ctx, http.MethodPost, "/createInvoiceLink", invoice)
	if err != nil {
		log.Printf("Fawaterak createInvoiceLink failed: %v", err)
		return nil, nil
	}
	if !isSuccess(status) {
		log.Printf("Fawaterak createInvoiceLink returned status %d: %s", status, body)
		return nil, nil
	}

	var resp models.InvoiceLinkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp.Data, nil
}

// GetPaymentMethods fetches the live payment-method list and annotates each
// entry's internal ID with its classification ordinal. The list is served
// from the short-lived cache when one is configured.
func (s *FawaterakService) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	if methods, ok := s.cache.Get(ctx); ok {
		return methods, nil
	}

	body, status, err := s.doRequest(ctx, http.MethodGet, "/getPaymentmethods", nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("fawaterak getPaymentmethods returned status %d", status)
	}

	var resp models.PaymentMethodsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	methods := resp.Data
	for i := range methods {
		methods[i].ID = int(ClassifyPaymentMethod(methods[i].PaymentID, methods))
	}

	s.cache.Set(ctx, methods)
	return methods, nil
}

// ClassifyPaymentMethod maps a gateway payment-method ID onto a kind by
// inspecting the English display name of the matching entry. An unknown ID
// or an empty name defaults to card. Classification is total: every input
// yields exactly one kind.
func ClassifyPaymentMethod(paymentID int, methods []models.PaymentMethod) models.PaymentMethodKind {
	var name string
	for _, method := range methods {
		if method.PaymentID == paymentID {
			name = method.NameEn
			break
		}
	}
	if name == "" {
		return models.PaymentMethodCard
	}

	name = strings.ToLower(name)
	if strings.Contains(name, "fawry") {
		return models.PaymentMethodFawry
	}
	if strings.Contains(name, "meeza") || strings.Contains(name, "wallet") {
		return models.PaymentMethodEWallet
	}
	return models.PaymentMethodCard
}

// GetPaymentMethod classifies a gateway payment-method ID, fetching the live
// method list first. Callers that already hold the list should call
// ClassifyPaymentMethod directly to avoid a duplicate fetch.
func (s *FawaterakService) GetPaymentMethod(ctx context.Context, paymentID int) models.PaymentMethodKind {
	methods, err := s.GetPaymentMethods(ctx)
	if err != nil {
		log.Printf("Fawaterak getPaymentmethods failed, defaulting to card: %v", err)
	}
	return ClassifyPaymentMethod(paymentID, methods)
}

// InitPayment submits the invoice to Fawaterak's direct payment-initiation
// endpoint. The response envelope differs per payment-method kind, so the
// chosen method is classified before the body is decoded. The customer email
// is canonicalized before the request is serialized. A nil result with a nil
// error means the gateway rejected the call; there is no retry.
func (s *FawaterakService) InitPayment(ctx context.Context, invoice *models.InvoiceRequest) (*models.PaymentResult, error) {
	if err := validateInvoice(invoice); err != nil {
		return nil, err
	}
	if invoice.PaymentMethodID == nil {
		return nil, errors.New("payment method id is required")
	}

	invoice.Customer.Email = utils.NormalizeEmailDots(invoice.Customer.Email)

	body, status, err := s.doRequest(ctx, http.MethodPost, "/invoiceInitPay", invoice)
	if err != nil {
		log.Printf("Fawaterak invoiceInitPay failed: %v", err)
		return nil, nil
	}
	if !isSuccess(status) {
		log.Printf("Fawaterak invoiceInitPay returned status %d: %s", status, body)
		return nil, nil
	}

	kind := s.GetPaymentMethod(ctx, *invoice.PaymentMethodID)
	result := &models.PaymentResult{Method: kind}

	switch kind {
	case models.PaymentMethodFawry:
		var resp models.FawryPaymentResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to parse fawry response: %w", err)
		}
		result.InvoiceID = resp.Data.InvoiceID
		result.InvoiceKey = resp.Data.InvoiceKey
		result.Fawry = &resp.Data.PaymentData
	case models.PaymentMethodEWallet:
		var resp models.EWalletPaymentResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to parse e-wallet response: %w", err)
		}
		result.InvoiceID = resp.Data.InvoiceID
		result.InvoiceKey = resp.Data.InvoiceKey
		result.EWallet = &resp.Data.PaymentData
	default:
		var resp models.CardPaymentResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to parse card response: %w", err)
		}
		result.InvoiceID = resp.Data.InvoiceID
		result.InvoiceKey = resp.Data.InvoiceKey
		result.Card = &resp.Data.PaymentData
	}

	return result, nil
}
