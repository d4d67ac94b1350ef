// Package notification surfaces live order events as toasts.
package notification

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// maxToasts bounds the board when nobody polls it.
const maxToasts = 200

// ToastBoard keeps toasts in memory until they auto-dismiss. Expired toasts are dropped lazily.
type ToastBoard struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	toasts []*entity.Toast
}

var (
	_ service.Notifier  = (*ToastBoard)(nil)
	_ service.ToastFeed = (*ToastBoard)(nil)
)

// NewToastBoard creates a board whose toasts live for ttl.
func NewToastBoard(ttl time.Duration) *ToastBoard {
	return &ToastBoard{
		ttl: ttl,
		now: time.Now,
	}
}

// Notify adds toast to the board, stamping missing id and times.
func (b *ToastBoard) Notify(_ context.Context, toast *entity.Toast) error {
	now := b.now()
	t := *toast
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.ExpiresAt.IsZero() {
		t.ExpiresAt = t.CreatedAt.Add(b.ttl)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(now)
	b.toasts = append(b.toasts, &t)
	if over := len(b.toasts) - maxToasts; over > 0 {
		b.toasts = append([]*entity.Toast(nil), b.toasts[over:]...)
	}

	return nil
}

// Active returns copies of the unexpired toasts matching filter, oldest first.
func (b *ToastBoard) Active(filter entity.ToastFilter) []*entity.Toast {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(b.now())

	out := make([]*entity.Toast, 0, len(b.toasts))
	for _, t := range b.toasts {
		if filter.Matches(t) {
			cp := *t
			out = append(out, &cp)
		}
	}

	return out
}

// Dismiss removes a toast before it expires.
func (b *ToastBoard) Dismiss(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, t := range b.toasts {
		if t.ID == id {
			b.toasts = append(b.toasts[:i:i], b.toasts[i+1:]...)

			return true
		}
	}

	return false
}

func (b *ToastBoard) pruneLocked(now time.Time) {
	kept := b.toasts[:0]
	for _, t := range b.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	clear(b.toasts[len(kept):])
	b.toasts = kept
}
