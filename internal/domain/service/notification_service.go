package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Notifier surfaces a toast to its audience
type Notifier interface {
	Notify(ctx context.Context, toast *entity.Toast) error
}

// ToastFeed lists toasts that have not auto-dismissed yet
type ToastFeed interface {
	// Active returns unexpired toasts matching filter, oldest first
	Active(filter entity.ToastFilter) []*entity.Toast

	// Dismiss removes a toast before it expires
	Dismiss(id uuid.UUID) bool
}
