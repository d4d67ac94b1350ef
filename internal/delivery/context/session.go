package context

import (
	"context"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// KeySessionID is the key for storing the storefront session id.
	KeySessionID ContextKey = "session_id"

	// KeyPage is the echo.Context key of the page opened for the request.
	KeyPage ContextKey = "page"
)

// SetSessionID sets the session id in echo.Context.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}

// GetSessionID extracts the session id from echo.Context, or "".
func GetSessionID(c echo.Context) string {
	id, _ := fromEcho[string](c, KeySessionID)

	return id
}

// WithSessionID returns a new context with the session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, KeySessionID, sessionID)
}

// GetSessionIDFromContext extracts the session id from context.Context, or "".
func GetSessionIDFromContext(ctx context.Context) string {
	id, _ := fromContext[string](ctx, KeySessionID)

	return id
}

// SetPage stores the opened page in echo.Context.
func SetPage(c echo.Context, page *usecase.Page) {
	c.Set(string(KeyPage), page)
}

// GetPage returns the page opened for the request, or nil.
func GetPage(c echo.Context) *usecase.Page {
	page, _ := fromEcho[*usecase.Page](c, KeyPage)

	return page
}
