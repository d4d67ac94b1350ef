package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves customer and owner order views
type OrderHandler struct{}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

// UpdateOrderStatusRequest sets the fulfilment status of an order
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// UpdatePaymentStatusRequest sets the payment status of an order
type UpdatePaymentStatusRequest struct {
	Status entity.PaymentStatus `json:"status" validate:"required"`
}

// ListUserOrders returns the orders of the logged in customer
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	orders, err := page.Orders.ListUserOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// OrderDetails returns the items of order :id
func (h *OrderHandler) OrderDetails(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := page.Orders.OrderDetails(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListShopOrders returns the incoming orders of the owner's shop
func (h *OrderHandler) ListShopOrders(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	orders, err := page.Orders.ListShopOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateOrderStatus moves order :id to a new fulfilment status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "status is required")
	}

	if err := page.Orders.UpdateOrderStatus(c.Request().Context(), orderID, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

// UpdatePaymentStatus moves the payment of order :id to a new status
func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "status is required")
	}

	if err := page.Orders.UpdatePaymentStatus(c.Request().Context(), orderID, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment status updated")
}
