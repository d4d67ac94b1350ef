package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisTransport subscribes to one redis channel per event name. The message payload is the event data.
type redisTransport struct {
	client         *redis.Client
	reconnectDelay time.Duration
	logger         *slog.Logger
}

// NewRedisTransport creates a transport over redis pub/sub.
func NewRedisTransport(client *redis.Client, reconnectDelay time.Duration, logger *slog.Logger) service.PushTransport {
	return &redisTransport{
		client:         client,
		reconnectDelay: reconnectDelay,
		logger:         logger,
	}
}

// Run implements service.PushTransport.
func (t *redisTransport) Run(ctx context.Context, events []string, handler service.PushHandler) error {
	return runWithReconnect(ctx, t.reconnectDelay, t.logger, handler, func(ctx context.Context, handler service.PushHandler) error {
		return t.session(ctx, events, handler)
	})
}

func (t *redisTransport) session(ctx context.Context, events []string, handler service.PushHandler) error {
	sub := t.client.Subscribe(ctx, events...)
	defer sub.Close()

	// wait for the subscription confirmation
	if _, err := sub.Receive(ctx); err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}

	handler.OnConnect()
	t.logger.Info("Redis push subscribed", slog.Any("channels", events))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errConnectionClosed
			}

			handler.OnMessage(service.PushMessage{
				Event: msg.Channel,
				Data:  json.RawMessage(msg.Payload),
			})
		}
	}
}

// Close releases the redis client
func (t *redisTransport) Close() error {
	return errors.WithStack(t.client.Close())
}
