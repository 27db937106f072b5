// controllers/payment_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/egypay/fawaterak_backend/models"
	"github.com/egypay/fawaterak_backend/services"
)

// PaymentController handles the Fawaterak payment integration endpoints
type PaymentController struct {
	Payments *services.FawaterakService
}

// NewPaymentController creates a new payment controller
func NewPaymentController(payments *services.FawaterakService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// CreateInvoice creates a Fawaterak invoice link for the submitted cart
func (pc *PaymentController) CreateInvoice(c echo.Context) error {
	var req models.InvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	data, err := pc.Payments.CreateInvoiceLink(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	if data == nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to create invoice",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Invoice created successfully",
		Data:    data,
	})
}

// GetPaymentMethods lists the payment methods currently offered by Fawaterak
func (pc *PaymentController) GetPaymentMethods(c echo.Context) error {
	methods, err := pc.Payments.GetPaymentMethods(c.Request().Context())
	if err != nil {
		log.Printf("Failed to retrieve payment methods: %v", err)
		return c.NoContent(http.StatusNoContent)
	}
	if len(methods) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment methods retrieved successfully",
		Data:    methods,
	})
}

// Pay initializes a payment for cards, wallets or Fawry
func (pc *PaymentController) Pay(c echo.Context) error {
	var req models.InvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := pc.Payments.InitPayment(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	if result == nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to initialize payment",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment initialized successfully",
		Data:    result,
	})
}

// IframeHash generates the signature required to embed the payment iframe
func (pc *PaymentController) IframeHash(c echo.Context) error {
	domain := c.QueryParam("domain")
	if domain == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "domain query parameter is required",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Hash key generated successfully",
		Data:    map[string]string{"hashKey": pc.Payments.GenerateHashKeyForIFrame(domain)},
	})
}
