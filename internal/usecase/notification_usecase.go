package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationUsecase listens for live order events and turns them into toasts.
type NotificationUsecase interface {
	// Start connects and blocks until ctx is done. Delivery is best effort; missed events are not replayed.
	Start(ctx context.Context) error

	// State returns the current connection state.
	State() entity.ConnectionState

	// Toasts returns the active toasts visible to filter.
	Toasts(filter entity.ToastFilter) []*entity.Toast
}
