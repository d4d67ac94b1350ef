package push

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopTransport is used when live notifications are disabled
type noopTransport struct {
	logger *slog.Logger
}

// Run blocks until ctx is done without ever connecting.
func (t *noopTransport) Run(ctx context.Context, _ []string, _ service.PushHandler) error {
	t.logger.Debug("[NoopPush] Live notifications disabled")
	<-ctx.Done()

	return nil
}

func (t *noopTransport) Close() error {
	return nil
}

// TransportParams holds dependencies for the PushTransport, injected by Fx
type TransportParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushTransport creates the PushTransport selected by push.provider
func NewPushTransport(params TransportParams) (service.PushTransport, error) {
	cfg := params.Config.Push
	logger := params.Logger

	// If push is not configured, return a no-op transport
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push not configured, live notifications disabled")

		return &noopTransport{logger: logger}, nil
	}

	var transport service.PushTransport
	var err error

	switch cfg.Provider {
	case constants.PushProviderWebSocket:
		if cfg.WebSocket.URL == "" {
			return nil, errors.New("websocket url is required for websocket provider")
		}
		logger.Info("Using WebSocket push transport", slog.String("url", cfg.WebSocket.URL))

		transport = NewWebSocketTransport(cfg.WebSocket.URL, cfg.ReconnectDelay, cfg.WebSocket.PingInterval, logger)

	case constants.PushProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis provider")
		}
		logger.Info("Using Redis push transport", slog.String("addr", cfg.Redis.Addr))

		transport = NewRedisTransport(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.ReconnectDelay, logger)

	case constants.PushProviderGoogle:
		if cfg.Google.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.Google.SubscriptionID == "" {
			return nil, errors.New("subscription ID is required for google provider")
		}

		transport, err = NewGooglePubSubTransport(params.Ctx, cfg.Google.ProjectID, cfg.Google.SubscriptionID, cfg.ReconnectDelay, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close transport on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing PushTransport")

			return transport.Close()
		},
	})

	return transport, nil
}
