package models

import (
	"encoding/json"
	"time"
)

// PaymentMethodKind buckets every Fawaterak payment method into one of the
// three response-parsing strategies the gateway uses.
type PaymentMethodKind int

const (
	PaymentMethodCard PaymentMethodKind = iota
	PaymentMethodFawry
	PaymentMethodEWallet
)

func (k PaymentMethodKind) String() string {
	switch k {
	case PaymentMethodFawry:
		return "fawry"
	case PaymentMethodEWallet:
		return "ewallet"
	default:
		return "card"
	}
}

// MarshalJSON renders the kind as its name rather than its ordinal
func (k PaymentMethodKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Customer holds the buyer details sent with an invoice
type Customer struct {
	CustomerID string `json:"customer_unique_id,omitempty"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
}

// CartItem is a single invoice line item
type CartItem struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Quantity int     `json:"quantity" validate:"min=1"`
}

// InvoicePayload carries free-form merchant data echoed back by the gateway
type InvoicePayload struct {
	OrderID string `json:"OrderId,omitempty"`
}

// RedirectionURLs are where the gateway sends the customer after payment
type RedirectionURLs struct {
	SuccessURL string `json:"successUrl,omitempty" validate:"omitempty,url"`
	FailURL    string `json:"failUrl,omitempty" validate:"omitempty,url"`
	PendingURL string `json:"pendingUrl,omitempty" validate:"omitempty,url"`
}

// InvoiceRequest is the request body for both createInvoiceLink and
// invoiceInitPay. PaymentMethodID is only required for the latter.
type InvoiceRequest struct {
	PaymentMethodID *int             `json:"payment_method_id,omitempty"`
	Customer        Customer         `json:"customer" validate:"required"`
	CartItems       []CartItem       `json:"cartItems" validate:"required,min=1,dive"`
	Currency        string           `json:"currency" validate:"required,len=3"`
	Payload         *InvoicePayload  `json:"payLoad,omitempty"`
	RedirectionURLs *RedirectionURLs `json:"redirectionUrls,omitempty"`
}

// CartTotal is the sum of price x quantity over the line items. The total is
// never stored, so it cannot drift from the cart contents.
func (r InvoiceRequest) CartTotal() float64 {
	var total float64
	for _, item := range r.CartItems {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// MarshalJSON injects the derived cartTotal into the wire form
func (r InvoiceRequest) MarshalJSON() ([]byte, error) {
	type invoiceRequest InvoiceRequest
	return json.Marshal(struct {
		invoiceRequest
		CartTotal float64 `json:"cartTotal"`
	}{invoiceRequest(r), r.CartTotal()})
}

// PaymentMethod is one entry from the gateway's getPaymentmethods list.
// ID is our internal classification ordinal; PaymentID is the gateway's.
type PaymentMethod struct {
	ID        int    `json:"id"`
	PaymentID int    `json:"paymentId"`
	NameEn    string `json:"name_en"`
	NameAr    string `json:"name_ar"`
	Redirect  string `json:"redirect"`
	Logo      string `json:"logo"`
}

// PaymentMethodsResponse wraps the gateway's payment-method list
type PaymentMethodsResponse struct {
	Status string          `json:"status"`
	Data   []PaymentMethod `json:"data"`
}

// InvoiceData is the payload returned when an invoice link is created
type InvoiceData struct {
	URL        string `json:"url"`
	InvoiceID  string `json:"invoiceId"`
	InvoiceKey string `json:"invoiceKey"`
}

// InvoiceLinkResponse wraps the createInvoiceLink response
type InvoiceLinkResponse struct {
	Status string      `json:"status"`
	Data   InvoiceData `json:"data"`
}

// CardPaymentData holds the redirect URL for a card payment
type CardPaymentData struct {
	RedirectTo string `json:"redirectTo"`
}

// FawryPaymentData holds the cash-voucher code for a Fawry payment
type FawryPaymentData struct {
	FawryCode  string    `json:"fawryCode"`
	ExpireDate time.Time `json:"expireDate"`
}

// EWalletPaymentData holds the mobile-wallet reference and QR payload
type EWalletPaymentData struct {
	MeezaReference string `json:"meezaReference"`
	MeezaQRCode    string `json:"meezaQrCode"`
}

// CardPaymentResponse is the invoiceInitPay envelope for card methods
type CardPaymentResponse struct {
	Status string                  `json:"status"`
	Data   CardPaymentResponseData `json:"data"`
}

type CardPaymentResponseData struct {
	InvoiceID   string          `json:"invoice_id"`
	InvoiceKey  string          `json:"invoice_key"`
	PaymentData CardPaymentData `json:"payment_data"`
}

// FawryPaymentResponse is the invoiceInitPay envelope for Fawry
type FawryPaymentResponse struct {
	Status string                   `json:"status"`
	Data   FawryPaymentResponseData `json:"data"`
}

type FawryPaymentResponseData struct {
	InvoiceID   string           `json:"invoice_id"`
	InvoiceKey  string           `json:"invoice_key"`
	PaymentData FawryPaymentData `json:"payment_data"`
}

// EWalletPaymentResponse is the invoiceInitPay envelope for Meeza/wallet
type EWalletPaymentResponse struct {
	Status string                     `json:"status"`
	Data   EWalletPaymentResponseData `json:"data"`
}

type EWalletPaymentResponseData struct {
	InvoiceID   string             `json:"invoice_id"`
	InvoiceKey  string             `json:"invoice_key"`
	PaymentData EWalletPaymentData `json:"payment_data"`
}

// PaymentResult is the kind-tagged outcome of a payment initiation.
// Exactly one of Card, Fawry or EWallet is populated, matching Method.
type PaymentResult struct {
	Method     PaymentMethodKind   `json:"method"`
	InvoiceID  string              `json:"invoice_id"`
	InvoiceKey string              `json:"invoice_key"`
	Card       *CardPaymentData    `json:"card,omitempty"`
	Fawry      *FawryPaymentData   `json:"fawry,omitempty"`
	EWallet    *EWalletPaymentData `json:"ewallet,omitempty"`
}

// PaidWebhook is the gateway's payment-success notification
type PaidWebhook struct {
	InvoiceID     int64  `json:"invoice_id"`
	InvoiceKey    string `json:"invoice_key"`
	PaymentMethod string `json:"payment_method"`
	HashKey       string `json:"hashKey"`
}

// CancelTransaction is the gateway's cancellation/failure notification
type CancelTransaction struct {
	ReferenceID   string `json:"referenceId"`
	PaymentMethod string `json:"payment_method"`
	HashKey       string `json:"hashKey"`
}

// CreateOrderRequest starts the order-to-invoice flow
type CreateOrderRequest struct {
	PaymentMethodID int              `json:"paymentMethodId" validate:"required,min=1"`
	Currency        string           `json:"currency" validate:"required,len=3"`
	Customer        Customer         `json:"customer" validate:"required"`
	Items           []CartItem       `json:"items" validate:"required,min=1,dive"`
	RedirectionURLs *RedirectionURLs `json:"redirectionUrls,omitempty"`
}
