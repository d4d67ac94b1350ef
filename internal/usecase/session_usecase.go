// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase resolves the stored token into an advisory role for page gating.
// The backend remains the authorization boundary.
type SessionUsecase interface {
	// Resolve decodes the stored token. Undecodable, expired or unknown-role tokens are removed
	// and the session is reported as logged out.
	Resolve(ctx context.Context) (*entity.SessionState, error)

	// Gate decides whether page may render for the current session or where to redirect.
	Gate(ctx context.Context, page entity.Page) (*entity.GateDecision, error)

	// Login stores token after checking that it decodes and has not expired.
	Login(ctx context.Context, token string) (*entity.SessionState, error)

	// Logout removes the token and clears the cart.
	Logout(ctx context.Context) error

	// BearerToken returns the stored token and its identity, or ErrUnauthenticated.
	BearerToken(ctx context.Context) (string, *entity.SessionIdentity, error)

	// HandleBackendRejection logs the session out when err says the backend rejected the token.
	// It returns err unchanged.
	HandleBackendRejection(ctx context.Context, err error) error
}
