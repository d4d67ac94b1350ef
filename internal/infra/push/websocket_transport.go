package push

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const writeWait = 10 * time.Second

// subscribeFrame is sent after connecting to select the events to receive.
type subscribeFrame struct {
	Event string   `json:"event"`
	Data  []string `json:"data"`
}

// websocketTransport reads {"event","data"} JSON frames from a websocket endpoint.
type websocketTransport struct {
	url            string
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
	pingInterval   time.Duration
	logger         *slog.Logger
}

// NewWebSocketTransport creates a transport for the websocket endpoint at url.
func NewWebSocketTransport(url string, reconnectDelay, pingInterval time.Duration, logger *slog.Logger) service.PushTransport {
	return &websocketTransport{
		url:            url,
		dialer:         websocket.DefaultDialer,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
		logger:         logger,
	}
}

// Run implements service.PushTransport.
func (t *websocketTransport) Run(ctx context.Context, events []string, handler service.PushHandler) error {
	wanted := eventSet(events)

	return runWithReconnect(ctx, t.reconnectDelay, t.logger, handler, func(ctx context.Context, handler service.PushHandler) error {
		return t.session(ctx, events, wanted, handler)
	})
}

func (t *websocketTransport) session(ctx context.Context, events []string, wanted map[string]struct{}, handler service.PushHandler) error {
	conn, _, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to dial %s", t.url)
	}
	defer conn.Close()

	if err := conn.WriteJSON(subscribeFrame{Event: "subscribe", Data: events}); err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}

	handler.OnConnect()
	t.logger.Info("WebSocket push connected", slog.String("url", t.url))

	done := make(chan struct{})
	defer close(done)
	go t.keepAlive(ctx, conn, done)

	for {
		var msg service.PushMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return errors.Wrap(err, "websocket read failed")
		}
		if _, ok := wanted[msg.Event]; !ok {
			continue
		}

		handler.OnMessage(msg)
	}
}

// keepAlive pings the server and closes the connection when ctx is done.
func (t *websocketTransport) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(t.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait),
			)
			conn.Close()

			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				conn.Close()

				return
			}
		}
	}
}

// Close implements service.PushTransport.
func (t *websocketTransport) Close() error {
	return nil
}
