package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var listenedEvents = []string{constants.PushEventOrderUpdate, constants.PushEventOrderCreate}

// notificationListener implements the NotificationUsecase interface.
type notificationListener struct {
	transport service.PushTransport
	notifier  service.Notifier
	feed      service.ToastFeed
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.RWMutex
	state entity.ConnectionState
}

// NewNotificationListener creates a disconnected listener.
func NewNotificationListener(
	transport service.PushTransport,
	notifier service.Notifier,
	feed service.ToastFeed,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationListener{
		transport: transport,
		notifier:  notifier,
		feed:      feed,
		logger:    logger,
		now:       time.Now,
		state:     entity.ConnectionDisconnected,
	}
}

// Start runs the transport until ctx is done.
func (l *notificationListener) Start(ctx context.Context) error {
	defer l.setState(entity.ConnectionDisconnected)

	err := l.transport.Run(ctx, listenedEvents, &listenerHandler{ctx: ctx, listener: l})
	if err != nil && ctx.Err() == nil {
		return errors.Wrap(domainerrors.ErrTransportDisconnected, err.Error())
	}

	return nil
}

// State returns the current connection state.
func (l *notificationListener) State() entity.ConnectionState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.state
}

// Toasts returns the active toasts visible to filter.
func (l *notificationListener) Toasts(filter entity.ToastFilter) []*entity.Toast {
	return l.feed.Active(filter)
}

func (l *notificationListener) setState(state entity.ConnectionState) {
	l.mu.Lock()
	prev := l.state
	l.state = state
	l.mu.Unlock()

	if prev != state {
		l.logger.Debug("Notification connection state changed",
			slog.String("from", string(prev)),
			slog.String("to", string(state)),
		)
	}
}

func (l *notificationListener) handle(ctx context.Context, msg service.PushMessage) {
	toast, err := l.toastFor(msg)
	if err != nil {
		l.logger.Warn("Dropping push event",
			slog.String("event", msg.Event),
			slog.Any("error", err),
		)

		return
	}

	if err := l.notifier.Notify(ctx, toast); err != nil {
		l.logger.Warn("Failed to surface notification",
			slog.String("event", msg.Event),
			slog.String("order_id", toast.OrderID.String()),
			slog.Any("error", err),
		)
	}
}

// toastFor maps a push event to the toast shown to its audience.
func (l *notificationListener) toastFor(msg service.PushMessage) (*entity.Toast, error) {
	var event entity.OrderEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		return nil, errors.Wrap(err, "malformed payload")
	}
	if event.OrderID.IsZero() {
		return nil, errors.New("payload has no order id")
	}

	toast := &entity.Toast{
		ID:        uuid.New(),
		Event:     msg.Event,
		OrderID:   event.OrderID,
		CreatedAt: l.now(),
	}

	switch msg.Event {
	case constants.PushEventOrderUpdate:
		toast.Audience = entity.AudienceCustomer
		toast.RecipientID = event.UserID
		toast.Title = "Order updated"
		toast.Description = fmt.Sprintf("Order #%s is now %s", event.OrderID, event.Status)
	case constants.PushEventOrderCreate:
		toast.Audience = entity.AudienceOwner
		toast.RecipientID = event.ShopID
		toast.Title = "New order"
		toast.Description = fmt.Sprintf("New order #%s received", event.OrderID)
	default:
		return nil, errors.Errorf("unknown event %q", msg.Event)
	}

	if event.Message != "" {
		toast.Description = event.Message
	}

	return toast, nil
}

// listenerHandler adapts transport callbacks to the listener for one Run.
type listenerHandler struct {
	ctx      context.Context
	listener *notificationListener
}

func (h *listenerHandler) OnConnecting() {
	h.listener.setState(entity.ConnectionConnecting)
}

func (h *listenerHandler) OnConnect() {
	h.listener.setState(entity.ConnectionConnected)
	h.listener.logger.Info("Live notifications connected")
}

func (h *listenerHandler) OnMessage(msg service.PushMessage) {
	h.listener.handle(h.ctx, msg)
}

func (h *listenerHandler) OnError(err error) {
	h.listener.setState(entity.ConnectionDisconnected)
	h.listener.logger.Warn("Live notifications disconnected",
		slog.Any("error", errors.Wrap(domainerrors.ErrTransportDisconnected, err.Error())),
	)
}
