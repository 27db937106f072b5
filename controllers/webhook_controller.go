// controllers/webhook_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/egypay/fawaterak_backend/models"
	"github.com/egypay/fawaterak_backend/services"
)

// WebhookController handles the asynchronous payment notifications Fawaterak
// posts back after a payment settles, is cancelled or fails. Notifications
// are verified and acknowledged; replay protection belongs to the caller.
type WebhookController struct {
	Payments *services.FawaterakService
}

// NewWebhookController creates a new webhook controller
func NewWebhookController(payments *services.FawaterakService) *WebhookController {
	return &WebhookController{Payments: payments}
}

// WebhookPaid handles a successful payment notification
func (wc *WebhookController) WebhookPaid(c echo.Context) error {
	var payload models.PaidWebhook
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if !wc.Payments.VerifyWebhook(&payload) {
		log.Printf("Rejected paid webhook for invoice %d: signature mismatch", payload.InvoiceID)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid webhook signature",
		})
	}

	log.Printf("Invoice %d paid via %s", payload.InvoiceID, payload.PaymentMethod)
	// Order fulfilment hooks plug in here.

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "got it!",
	})
}

// WebhookCancel handles a payment cancellation notification
func (wc *WebhookController) WebhookCancel(c echo.Context) error {
	return wc.handleCancelOrFail(c, "cancelled")
}

// WebhookFailed handles a failed payment notification
func (wc *WebhookController) WebhookFailed(c echo.Context) error {
	return wc.handleCancelOrFail(c, "failed")
}

func (wc *WebhookController) handleCancelOrFail(c echo.Context, outcome string) error {
	var payload models.CancelTransaction
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if !wc.Payments.VerifyCancelTransaction(&payload) {
		log.Printf("Rejected %s webhook for reference %s: signature mismatch", outcome, payload.ReferenceID)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid webhook signature",
		})
	}

	log.Printf("Transaction %s %s via %s", payload.ReferenceID, outcome, payload.PaymentMethod)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification processed",
	})
}
