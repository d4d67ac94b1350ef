package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionHandler serves login state and page gating
type SessionHandler struct{}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// LoginRequest carries a token issued by the backend
type LoginRequest struct {
	Token string `json:"token" validate:"required"`
}

// GetSession returns the resolved session state
func (h *SessionHandler) GetSession(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	state, err := page.Session.Resolve(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// Login stores the token for the session
func (h *SessionHandler) Login(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "token is required")
	}

	state, err := page.Session.Login(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Logged in")
}

// Logout drops the token and clears the cart
func (h *SessionHandler) Logout(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	if err := page.Session.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Gate tells the UI whether ?page= may render
func (h *SessionHandler) Gate(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	decision, err := page.Session.Gate(c.Request().Context(), entity.Page(c.QueryParam("page")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, decision, "")
}

// GetProfile proxies the backend profile of the logged in user
func (h *SessionHandler) GetProfile(c echo.Context) error {
	page, err := currentPage(c)
	if err != nil {
		return err
	}

	profile, err := page.Shops.Profile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}
