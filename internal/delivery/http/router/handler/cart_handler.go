package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the session cart
type CartHandler struct{}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// AddItemRequest names a menu item to add once
type AddItemRequest struct {
	ShopID entity.ID `json:"shop_id" validate:"required"`
	ItemID entity.ID `json:"item_id" validate:"required"`
}

// CartView is the cart plus sidebar visibility
type CartView struct {
	*entity.CartSummary
	SidebarOpen bool `json:"sidebar_open"`
}

// GetCart returns the hydrated cart
func (h *CartHandler) GetCart(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, CartView{
		CartSummary: page.Cart.Summary(),
		SidebarOpen: page.Cart.SidebarOpen(c.Request().Context()),
	}, "")
}

// AddItem adds one unit of a menu item. Items of another shop are refused with 409.
func (h *CartHandler) AddItem(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "shop_id and item_id are required")
	}

	summary, err := page.Shops.AddToCart(c.Request().Context(), req.ShopID, req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Item added")
}

// RemoveItem removes one unit of :itemId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := page.Cart.RemoveItem(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// Clear empties the cart
func (h *CartHandler) Clear(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	if err := page.Cart.Clear(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page.Cart.Summary(), "Cart cleared")
}

// ToggleSidebar flips the sidebar visibility
func (h *CartHandler) ToggleSidebar(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	open, err := page.Cart.ToggleSidebar(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"sidebar_open": open}, "")
}
