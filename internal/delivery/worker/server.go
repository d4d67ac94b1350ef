// Package worker runs the live notification listener as a delivery.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/delivery"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type workerServer struct {
	listener usecase.NotificationUsecase
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Logger   *slog.Logger
	Listener usecase.NotificationUsecase
}

// NewServer creates the notification worker
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		listener: params.Listener,
		logger:   params.Logger,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the listener until the worker is stopped. Transport failures are logged;
// the transport owns reconnecting.
func (s *workerServer) Serve(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer close(s.done)
	defer cancel()

	s.logger.Info("Starting notification worker")
	if err := s.listener.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("Notification listener stopped", slog.Any("error", err))
	}

	return nil
}

// stop cancels the listener and waits for it to return
func (s *workerServer) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	s.logger.Info("Shutting down notification worker")
	cancel()

	waitCtx, cancelWait := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelWait()

	select {
	case <-s.done:
		return nil
	case <-waitCtx.Done():
		return errors.WithStack(waitCtx.Err())
	}
}
