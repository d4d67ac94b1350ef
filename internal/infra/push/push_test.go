package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// recordingHandler collects transport callbacks.
type recordingHandler struct {
	mu         sync.Mutex
	connecting int
	connects   int
	errs       []error
	messages   []service.PushMessage
	received   chan struct{}
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{received: make(chan struct{}, 16)}
}

func (h *recordingHandler) OnConnecting() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connecting++
}

func (h *recordingHandler) OnConnect() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connects++
}

func (h *recordingHandler) OnMessage(msg service.PushMessage) {
	h.mu.Lock()
	h.messages = append(h.messages, msg)
	h.mu.Unlock()
	h.received <- struct{}{}
}

func (h *recordingHandler) OnError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) waitMessages(t *testing.T, n int) []service.PushMessage {
	t.Helper()

	for range n {
		select {
		case <-h.received:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %d messages", n)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]service.PushMessage(nil), h.messages...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testEvents = []string{"orderUpdate", "orderCreate"}

func TestWebSocketTransport_DeliversSubscribedEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	subscribed := make(chan subscribeFrame, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var frame subscribeFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		subscribed <- frame

		_ = conn.WriteJSON(map[string]any{"event": "chat", "data": map[string]any{"text": "hi"}})
		_ = conn.WriteJSON(map[string]any{"event": "orderUpdate", "data": map[string]any{"order_id": 1, "status": "accepted"}})
		_ = conn.WriteJSON(map[string]any{"event": "orderCreate", "data": map[string]any{"order_id": 2}})

		// hold the connection until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	transport := NewWebSocketTransport(url, 10*time.Millisecond, time.Second, discardLogger())
	handler := newRecordingHandler()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- transport.Run(ctx, testEvents, handler) }()

	frame := <-subscribed
	assert.Equal(t, "subscribe", frame.Event)
	assert.Equal(t, testEvents, frame.Data)

	messages := handler.waitMessages(t, 2)
	require.Len(t, messages, 2)
	assert.Equal(t, "orderUpdate", messages[0].Event)
	assert.JSONEq(t, `{"order_id":1,"status":"accepted"}`, string(messages[0].Data))
	assert.Equal(t, "orderCreate", messages[1].Event)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 1, handler.connects)
}

func TestWebSocketTransport_Reconnects(t *testing.T) {
	upgrader := websocket.Upgrader{}
	var mu sync.Mutex
	accepted := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		mu.Lock()
		accepted++
		n := accepted
		mu.Unlock()

		var frame subscribeFrame
		_ = conn.ReadJSON(&frame)
		_ = conn.WriteJSON(map[string]any{"event": "orderCreate", "data": map[string]any{"order_id": n}})
		// first connection drops right away
		if n == 1 {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	transport := NewWebSocketTransport(url, 10*time.Millisecond, time.Second, discardLogger())
	handler := newRecordingHandler()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- transport.Run(ctx, testEvents, handler) }()

	messages := handler.waitMessages(t, 2)
	cancel()
	require.NoError(t, <-done)

	assert.Len(t, messages, 2)
	handler.mu.Lock()
	defer handler.mu.Unlock()
	assert.GreaterOrEqual(t, handler.connecting, 2)
	assert.GreaterOrEqual(t, len(handler.errs), 1)
}

func TestWebSocketTransport_DialFailureRetries(t *testing.T) {
	transport := NewWebSocketTransport("ws://127.0.0.1:1/ws", 5*time.Millisecond, time.Second, discardLogger())
	handler := newRecordingHandler()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, transport.Run(ctx, testEvents, handler))

	handler.mu.Lock()
	defer handler.mu.Unlock()
	assert.Zero(t, handler.connects)
	assert.GreaterOrEqual(t, len(handler.errs), 2)
}

func TestRedisTransport_DeliversChannelMessages(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	transport := NewRedisTransport(client, 10*time.Millisecond, discardLogger())
	handler := newRecordingHandler()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- transport.Run(ctx, testEvents, handler) }()

	publisher := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer publisher.Close()

	payload, err := json.Marshal(map[string]any{"order_id": 4, "shop_id": "s1"})
	require.NoError(t, err)

	// publish until the subscription is live
	require.Eventually(t, func() bool {
		n, err := publisher.Publish(context.Background(), "orderCreate", payload).Result()

		return err == nil && n > 0
	}, 5*time.Second, 10*time.Millisecond)

	messages := handler.waitMessages(t, 1)
	assert.Equal(t, "orderCreate", messages[0].Event)
	assert.JSONEq(t, string(payload), string(messages[0].Data))

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, transport.Close())
}

func TestNewPushTransport(t *testing.T) {
	websocketConfig := &config.PushConfig{Provider: "websocket"}
	websocketConfig.WebSocket.URL = "ws://localhost/ws"
	websocketConfig.WebSocket.PingInterval = time.Second

	tests := []struct {
		name    string
		push    *config.PushConfig
		wantErr bool
	}{
		{name: "disabled", push: nil},
		{name: "websocket", push: websocketConfig},
		{name: "websocket without url", push: &config.PushConfig{Provider: "websocket"}, wantErr: true},
		{name: "redis without addr", push: &config.PushConfig{Provider: "redis"}, wantErr: true},
		{name: "google without project", push: &config.PushConfig{Provider: "google"}, wantErr: true},
		{name: "unknown", push: &config.PushConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			transport, err := NewPushTransport(TransportParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{Push: tt.push},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, transport)
		})
	}
}

func TestNoopTransport_BlocksUntilCancelled(t *testing.T) {
	transport := &noopTransport{logger: discardLogger()}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.NoError(t, transport.Run(ctx, testEvents, newRecordingHandler()))
}
