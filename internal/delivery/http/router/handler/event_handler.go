package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/constants"
	"storefront/internal/infra/syncbus"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	eventBuffer       = 32
	heartbeatInterval = 25 * time.Second
)

// EventHandler streams the session's sync bus as Server-Sent Events
type EventHandler struct {
	registry  *syncbus.Registry
	pages     usecase.PageFactory
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(registry *syncbus.Registry, pages usecase.PageFactory, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		registry:  registry,
		pages:     pages,
		logger:    logger,
		heartbeat: heartbeatInterval,
	}
}

type busEvent struct {
	name string
	data string
}

// Stream sends cartUpdated with the unique item count and cartToggle without payload.
// The stream opens with the current count. A client that falls behind loses events
// rather than stalling the publisher.
func (h *EventHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	sessionID := deliverycontext.GetSessionID(c)

	bus, detach := h.registry.Attach(sessionID)
	defer detach()

	events := make(chan busEvent, eventBuffer)
	send := func(event busEvent) {
		select {
		case events <- event:
		default:
			logger.Warn("Dropping sync event for slow client", slog.String("event", event.name))
		}
	}

	unsubscribeUpdated := bus.SubscribeCartUpdated(func(count int) {
		send(busEvent{name: constants.EventCartUpdated, data: strconv.Itoa(count)})
	})
	defer unsubscribeUpdated()

	unsubscribeToggle := bus.SubscribeCartToggle(func() {
		send(busEvent{name: constants.EventCartToggle})
	})
	defer unsubscribeToggle()

	// Subscribed first so nothing published after the snapshot is lost
	count, err := h.uniqueItemCount(c, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	if err := writeEvent(res, busEvent{name: constants.EventCartUpdated, data: strconv.Itoa(count)}); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-events:
			if err := writeEvent(res, event); err != nil {
				logger.Debug("Event stream closed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func (h *EventHandler) uniqueItemCount(c echo.Context, sessionID string) (int, error) {
	page, release, err := h.pages.Open(c.Request().Context(), sessionID)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer release()

	return page.Cart.UniqueItemCount(), nil
}

func writeEvent(res *echo.Response, event busEvent) error {
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.name, event.data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
