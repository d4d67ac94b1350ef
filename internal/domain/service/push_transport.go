package service

import (
	"context"
	"encoding/json"
)

// PushMessage is one server-pushed event.
type PushMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// PushHandler receives transport callbacks. Calls are never concurrent for one Run.
type PushHandler interface {
	// OnConnecting is called before every connection attempt, including reconnects.
	OnConnecting()
	OnConnect()
	OnMessage(msg PushMessage)
	OnError(err error)
}

// PushTransport delivers server-pushed events. It owns connection establishment and reconnection.
type PushTransport interface {
	// Run subscribes to events and blocks until ctx is done.
	Run(ctx context.Context, events []string, handler PushHandler) error

	// Close releases any resources held by the transport
	Close() error
}
