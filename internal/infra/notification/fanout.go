package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// Fanout surfaces a toast on a primary notifier and mirrors it to secondary ones.
// Only a primary failure is returned; mirror failures are logged.
type Fanout struct {
	primary service.Notifier
	mirrors []service.Notifier
	logger  *slog.Logger
}

// NewFanout creates a fanout notifier. Nil mirrors are skipped.
func NewFanout(logger *slog.Logger, primary service.Notifier, mirrors ...service.Notifier) *Fanout {
	f := &Fanout{primary: primary, logger: logger}
	for _, m := range mirrors {
		if m != nil {
			f.mirrors = append(f.mirrors, m)
		}
	}

	return f
}

// Notify implements service.Notifier.
func (f *Fanout) Notify(ctx context.Context, toast *entity.Toast) error {
	if err := f.primary.Notify(ctx, toast); err != nil {
		return err
	}

	for _, m := range f.mirrors {
		if err := m.Notify(ctx, toast); err != nil {
			f.logger.Warn("Failed to mirror notification",
				slog.String("toast_id", toast.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}
