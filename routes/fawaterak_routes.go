package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/egypay/fawaterak_backend/controllers"
	"github.com/egypay/fawaterak_backend/middleware"
	"github.com/egypay/fawaterak_backend/services"
)

// RegisterFawaterakRoutes sets up the payment, webhook and order routes
func RegisterFawaterakRoutes(e *echo.Echo, payments *services.FawaterakService) {
	paymentController := controllers.NewPaymentController(payments)
	webhookController := controllers.NewWebhookController(payments)
	orderController := controllers.NewOrderController(payments)

	fawaterak := e.Group("/api/fawaterak")
	fawaterak.POST("/invoices", paymentController.CreateInvoice)
	fawaterak.GET("/payment-methods", paymentController.GetPaymentMethods)
	fawaterak.POST("/pay", paymentController.Pay)

	// The iframe hash endpoint hands out signing material, so it is gated
	// behind the merchant API key.
	fawaterak.GET("/iframe-hash", paymentController.IframeHash,
		middleware.RequireAPIKey(payments.VerifyAPIKey))

	// Webhooks authenticate through their embedded signatures, not the API key
	webhooks := fawaterak.Group("/webhooks")
	webhooks.POST("/paid_json", webhookController.WebhookPaid)
	webhooks.POST("/cancel", webhookController.WebhookCancel)
	webhooks.POST("/failed", webhookController.WebhookFailed)

	e.POST("/api/orders", orderController.CreateOrder)
}
