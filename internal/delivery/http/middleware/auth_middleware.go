package middleware

import (
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware gates routes on the role decoded from the session token.
// The decision is advisory; the backend still authorizes every call.
type AuthMiddleware struct{}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// Authenticate rejects requests whose session is logged out. It must run after OpenPage.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state, err := m.resolve(c)
		if err != nil {
			return err
		}
		if !state.LoggedIn() {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session role. It must run after OpenPage.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, err := m.resolve(c)
			if err != nil {
				return err
			}
			if !state.LoggedIn() {
				return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
			}
			if state.Identity.Role != requiredRole {
				return response.HandleAppError(c,
					domainerrors.ErrForbidden.WithDetails("require '"+requiredRole.String()+"' role"))
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (*entity.SessionState, error) {
	page := deliverycontext.GetPage(c)
	if page == nil {
		return nil, errors.New("auth middleware: no page opened for request")
	}

	state, err := page.Session.Resolve(c.Request().Context())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return state, nil
}
