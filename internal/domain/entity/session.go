package entity

import "time"

// SessionIdentity is the decoded, unverified payload of a session token.
type SessionIdentity struct {
	SubjectID ID         `json:"id"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	ExpiresAt *time.Time `json:"exp,omitempty"`
}

// IsExpired reports whether the token expiry is at or before now. A token without exp never expires.
func (s *SessionIdentity) IsExpired(now time.Time) bool {
	if s == nil || s.ExpiresAt == nil {
		return false
	}

	return !now.Before(*s.ExpiresAt)
}

// SessionStatus is the outcome of resolving the stored token.
type SessionStatus string

const (
	SessionLoggedOut SessionStatus = "logged_out"
	SessionCustomer  SessionStatus = "customer"
	SessionOwner     SessionStatus = "owner"
)

// SessionState is what the UI needs to render navigation.
type SessionState struct {
	Status   SessionStatus    `json:"status"`
	Identity *SessionIdentity `json:"identity,omitempty"`
}

// LoggedIn reports whether a usable identity is present.
func (s *SessionState) LoggedIn() bool {
	return s != nil && s.Status != SessionLoggedOut
}

// Page identifies a gated storefront page.
type Page string

const (
	PageStorefront     Page = "storefront"
	PageOwnerDashboard Page = "owner_dashboard"
	PageOrders         Page = "orders"
	PageCheckout       Page = "checkout"
)

// IsValid checks if the Page is known.
func (p Page) IsValid() bool {
	switch p {
	case PageStorefront, PageOwnerDashboard, PageOrders, PageCheckout:
		return true
	default:
		return false
	}
}

// GateDecision tells the UI whether to render a page or redirect.
type GateDecision struct {
	Page       Page          `json:"page"`
	Allowed    bool          `json:"allowed"`
	RedirectTo string        `json:"redirect_to,omitempty"`
	Session    *SessionState `json:"session"`
}
