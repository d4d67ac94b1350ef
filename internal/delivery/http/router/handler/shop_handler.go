package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ShopHandler serves shop browsing and selection
type ShopHandler struct {
	catalog usecase.CatalogUsecase
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(catalog usecase.CatalogUsecase) *ShopHandler {
	return &ShopHandler{catalog: catalog}
}

// SelectShopRequest names the shop the visitor is browsing
type SelectShopRequest struct {
	ShopID entity.ID `json:"shop_id" validate:"required"`
}

// ListShops returns every shop; backend failures yield an empty list
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.catalog.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// ListMenuItems returns the menu of :id
func (h *ShopHandler) ListMenuItems(c echo.Context) error {
	shopID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.catalog.ListMenuItems(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// PaymentQR renders a PNG payment QR code for ?amount= to shop :id
func (h *ShopHandler) PaymentQR(c echo.Context) error {
	shopID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "amount must be a decimal number")
	}

	png, err := h.catalog.PaymentQR(c.Request().Context(), shopID, amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetSelectedShop returns the persisted shop selection, or null
func (h *ShopHandler) GetSelectedShop(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	shop, err := page.Shops.SelectedShop(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// SelectShop persists the selection; a cart of another shop is cleared
func (h *ShopHandler) SelectShop(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	var req SelectShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop selection")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "shop_id is required")
	}

	shop, err := page.Shops.SelectShop(c.Request().Context(), req.ShopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop selected")
}
