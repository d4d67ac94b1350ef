package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OwnerHandler serves shop management for owners
type OwnerHandler struct{}

// NewOwnerHandler is the constructor for OwnerHandler
func NewOwnerHandler() *OwnerHandler {
	return &OwnerHandler{}
}

// ListShops returns the shops of the owner
func (h *OwnerHandler) ListShops(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	shops, err := page.Shops.OwnerShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// AddMenuItem creates a menu item in shop :id
func (h *OwnerHandler) AddMenuItem(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	shopID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := h.bindMenuItem(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := page.Shops.AddMenuItem(c.Request().Context(), shopID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created")
}

// UpdateMenuItem replaces menu item :itemId of shop :id
func (h *OwnerHandler) UpdateMenuItem(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	shopID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := h.bindMenuItem(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := page.Shops.UpdateMenuItem(c.Request().Context(), shopID, itemID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated")
}

func (h *OwnerHandler) bindMenuItem(c echo.Context) (*entity.MenuItemInput, error) {
	var input entity.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid menu item input")
	}
	if err := c.Validate(&input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return &input, nil
}
