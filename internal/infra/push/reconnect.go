// Package push implements the live order event transports.
package push

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// connectFunc runs one connection until it fails or ctx is done.
type connectFunc func(ctx context.Context, handler service.PushHandler) error

// errConnectionClosed is reported when a connection ends without an error.
var errConnectionClosed = errors.New("push connection closed")

// runWithReconnect keeps a connection alive until ctx is done, waiting delay between attempts.
func runWithReconnect(ctx context.Context, delay time.Duration, logger *slog.Logger, handler service.PushHandler, connect connectFunc) error {
	for {
		handler.OnConnecting()

		err := connect(ctx, handler)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			err = errConnectionClosed
		}
		handler.OnError(err)

		logger.Debug("Push connection lost, retrying",
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil
		case <-timer.C:
		}
	}
}

func eventSet(events []string) map[string]struct{} {
	set := make(map[string]struct{}, len(events))
	for _, e := range events {
		set[e] = struct{}{}
	}

	return set
}
