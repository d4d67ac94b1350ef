package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// proofField is the multipart field holding the payment proof image
const proofField = "proof"

// CheckoutHandler turns the cart into an order
type CheckoutHandler struct{}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler() *CheckoutHandler {
	return &CheckoutHandler{}
}

// Checkout uploads the payment proof and places the order
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile(proofField)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "payment proof image is required")
	}

	file, err := header.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "payment proof could not be read")
	}
	defer file.Close()

	order, err := page.Checkout.Checkout(c.Request().Context(), &usecase.PaymentProof{
		Filename: header.Filename,
		Content:  file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}
