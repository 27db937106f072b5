// controllers/order_controller.go
package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/egypay/fawaterak_backend/models"
	"github.com/egypay/fawaterak_backend/services"
	"github.com/egypay/fawaterak_backend/utils"
)

// OrderController demonstrates the end-to-end order-to-invoice flow: sanitize
// the buyer details, stamp a merchant order reference into the invoice
// payload and initiate payment with the chosen method.
type OrderController struct {
	Payments *services.FawaterakService
}

// NewOrderController creates a new order controller
func NewOrderController(payments *services.FawaterakService) *OrderController {
	return &OrderController{Payments: payments}
}

// CreateOrder creates a new order and initializes its payment
func (oc *OrderController) CreateOrder(c echo.Context) error {
	var req models.CreateOrderRequest
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

	customer := req.Customer
	if customer.Email != "" {
		email, err := utils.SanitizeEmail(customer.Email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		customer.Email = email
	}
	phone, err := utils.SanitizePhone(customer.Phone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	customer.Phone = phone

	// The order reference travels in the invoice payload and comes back in
	// the paid webhook, tying the notification to this order.
	orderID := uuid.NewString()

	invoice := &models.InvoiceRequest{
		PaymentMethodID: &req.PaymentMethodID,
		Customer:        customer,
		CartItems:       req.Items,
		Currency:        req.Currency,
		Payload:         &models.InvoicePayload{OrderID: orderID},
		RedirectionURLs: req.RedirectionURLs,
	}

	result, err := oc.Payments.InitPayment(c.Request().Context(), invoice)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	if result == nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to initialize payment for order",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Order created successfully",
		Data: map[string]interface{}{
			"orderId": orderID,
			"total":   invoice.CartTotal(),
			"payment": result,
		},
	})
}
