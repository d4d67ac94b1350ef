package push

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
)

// eventAttribute names the message attribute carrying the push event name.
const eventAttribute = "event"

// googlePubSubTransport receives push events from a Google Cloud Pub/Sub subscription
type googlePubSubTransport struct {
	client         *pubsub.Client
	subscriber     *pubsub.Subscriber
	reconnectDelay time.Duration
	logger         *slog.Logger
}

// NewGooglePubSubTransport creates a transport reading from subscriptionID
func NewGooglePubSubTransport(ctx context.Context, projectID, subscriptionID string, reconnectDelay time.Duration, logger *slog.Logger) (service.PushTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger.Info("Google Pub/Sub transport initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &googlePubSubTransport{
		client:         client,
		subscriber:     client.Subscriber(subscriptionID),
		reconnectDelay: reconnectDelay,
		logger:         logger,
	}, nil
}

// Run implements service.PushTransport. Messages for other events are acked and skipped.
func (t *googlePubSubTransport) Run(ctx context.Context, events []string, handler service.PushHandler) error {
	wanted := eventSet(events)

	return runWithReconnect(ctx, t.reconnectDelay, t.logger, handler, func(ctx context.Context, handler service.PushHandler) error {
		// Receive invokes the callback concurrently
		var mu sync.Mutex

		handler.OnConnect()

		err := t.subscriber.Receive(ctx, func(_ context.Context, msg *pubsub.Message) {
			msg.Ack()

			event := msg.Attributes[eventAttribute]
			if _, ok := wanted[event]; !ok {
				t.logger.Debug("[GooglePubSub] Skipping event", slog.String("event", event))

				return
			}

			mu.Lock()
			defer mu.Unlock()
			handler.OnMessage(service.PushMessage{Event: event, Data: msg.Data})
		})

		return errors.WithStack(err)
	})
}

// Close releases Pub/Sub client resources
func (t *googlePubSubTransport) Close() error {
	if t.client != nil {
		return errors.WithStack(t.client.Close())
	}

	return nil
}
