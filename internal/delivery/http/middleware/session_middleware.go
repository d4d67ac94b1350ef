package middleware

import (
	"log/slog"
	"net/http"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sessionCookieMaxAge keeps the session cookie for a year
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// SessionMiddleware binds every request to a storefront session
type SessionMiddleware struct {
	pages      usecase.PageFactory
	cookieName string
	secure     bool
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(pages usecase.PageFactory, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		pages:      pages,
		cookieName: cfg.HTTP.SessionCookie,
		secure:     cfg.Env.Env == constants.EnvProduction,
	}
}

// Identify resolves the session id from the cookie or the X-Session-Id header and mints one when
// neither holds a valid id. The id is echoed in both so cookie-less clients can keep it.
func (m *SessionMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, minted := m.sessionID(c)
		if minted {
			c.SetCookie(&http.Cookie{
				Name:     m.cookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   sessionCookieMaxAge,
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Response().Header().Set(constants.HeaderXSessionID, sessionID)

		deliverycontext.SetSessionID(c, sessionID)
		ctx := c.Request().Context()
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("session_id", sessionID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// OpenPage opens the session's page for the duration of the request. It must run after Identify.
// Requests of one session are served one at a time.
func (m *SessionMiddleware) OpenPage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := deliverycontext.GetSessionID(c)
		if sessionID == "" {
			return errors.New("session middleware: Identify must run before OpenPage")
		}

		page, release, err := m.pages.Open(c.Request().Context(), sessionID)
		if err != nil {
			return errors.Wrap(err, "failed to open session page")
		}
		defer release()

		deliverycontext.SetPage(c, page)

		return next(c)
	}
}

func (m *SessionMiddleware) sessionID(c echo.Context) (string, bool) {
	if cookie, err := c.Cookie(m.cookieName); err == nil && validSessionID(cookie.Value) {
		return cookie.Value, false
	}
	if header := c.Request().Header.Get(constants.HeaderXSessionID); validSessionID(header) {
		return header, false
	}

	return uuid.New().String(), true
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)

	return id != "" && err == nil
}
