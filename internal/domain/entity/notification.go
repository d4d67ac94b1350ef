// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ConnectionState is the live notification connection lifecycle.
type ConnectionState string

const (
	ConnectionDisconnected ConnectionState = "disconnected"
	ConnectionConnecting   ConnectionState = "connecting"
	ConnectionConnected    ConnectionState = "connected"
)

// OrderEvent is the payload of an orderUpdate or orderCreate push event.
type OrderEvent struct {
	OrderID ID          `json:"order_id"`
	Status  OrderStatus `json:"status"`
	UserID  ID          `json:"user_id,omitempty"`
	ShopID  ID          `json:"shop_id,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Audience selects who a toast is shown to.
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceOwner    Audience = "owner"
)

// Toast is a transient, auto-dismissing notification.
type Toast struct {
	ID          uuid.UUID `json:"id"`           // Unique toast identifier.
	Audience    Audience  `json:"audience"`     // Customer or owner facing.
	RecipientID ID        `json:"recipient_id"` // User or shop the event targets; empty for broadcast.
	Event       string    `json:"event"`        // Push event name that produced the toast.
	OrderID     ID        `json:"order_id"`     // Order the toast refers to.
	Title       string    `json:"title"`        // Short heading.
	Description string    `json:"description"`  // Human-readable summary.
	CreatedAt   time.Time `json:"created_at"`   // When the event was received.
	ExpiresAt   time.Time `json:"expires_at"`   // When the toast auto-dismisses.
}

// Expired reports whether the toast should no longer be shown.
func (t *Toast) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// ToastFilter selects toasts for a viewer. RecipientIDs lists the user id of a customer
// or the shop ids of an owner.
type ToastFilter struct {
	Audience     Audience
	RecipientIDs []ID
}

// Matches reports whether the toast is visible to the filter. Broadcast toasts match any recipient.
func (f ToastFilter) Matches(t *Toast) bool {
	if f.Audience != "" && t.Audience != f.Audience {
		return false
	}
	if t.RecipientID.IsZero() {
		return true
	}

	return slices.Contains(f.RecipientIDs, t.RecipientID)
}
