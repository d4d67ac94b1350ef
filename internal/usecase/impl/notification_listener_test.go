package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/notification"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationListenerFixtures holds all test dependencies for notification listener tests.
type notificationListenerFixtures struct {
	listener  usecase.NotificationUsecase
	transport *mockSvc.MockPushTransport
	board     *notification.ToastBoard
}

func createTestNotificationListener(t *testing.T) notificationListenerFixtures {
	transport := mockSvc.NewMockPushTransport(t)
	board := notification.NewToastBoard(time.Minute)
	listener := NewNotificationListener(transport, board, board, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return notificationListenerFixtures{
		listener:  listener,
		transport: transport,
		board:     board,
	}
}

func pushMessage(t *testing.T, event string, payload any) service.PushMessage {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	return service.PushMessage{Event: event, Data: data}
}

func TestNotificationListener_Start_SurfacesToasts(t *testing.T) {
	fx := createTestNotificationListener(t)
	ctx := context.Background()

	var states []entity.ConnectionState
	fx.transport.EXPECT().
		Run(ctx, []string{constants.PushEventOrderUpdate, constants.PushEventOrderCreate}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string, handler service.PushHandler) error {
			states = append(states, fx.listener.State())
			handler.OnConnecting()
			states = append(states, fx.listener.State())
			handler.OnConnect()
			states = append(states, fx.listener.State())

			handler.OnMessage(pushMessage(t, constants.PushEventOrderUpdate, map[string]any{
				"order_id": 12, "status": "accepted", "user_id": 7,
			}))
			handler.OnMessage(pushMessage(t, constants.PushEventOrderCreate, map[string]any{
				"order_id": "13", "shop_id": "s1",
			}))
			handler.OnMessage(pushMessage(t, constants.PushEventOrderCreate, map[string]any{
				"order_id": "14", "shop_id": "s2", "message": "Table 4 ordered",
			}))

			return nil
		})

	require.NoError(t, fx.listener.Start(ctx))

	assert.Equal(t, []entity.ConnectionState{
		entity.ConnectionDisconnected,
		entity.ConnectionConnecting,
		entity.ConnectionConnected,
	}, states)
	assert.Equal(t, entity.ConnectionDisconnected, fx.listener.State())

	customer := fx.listener.Toasts(entity.ToastFilter{
		Audience: entity.AudienceCustomer, RecipientIDs: []entity.ID{"7"},
	})
	require.Len(t, customer, 1)
	assert.Equal(t, "Order #12 is now accepted", customer[0].Description)
	assert.Equal(t, constants.PushEventOrderUpdate, customer[0].Event)

	owner := fx.listener.Toasts(entity.ToastFilter{
		Audience: entity.AudienceOwner, RecipientIDs: []entity.ID{"s1", "s2"},
	})
	require.Len(t, owner, 2)
	assert.Equal(t, "New order #13 received", owner[0].Description)
	assert.Equal(t, "Table 4 ordered", owner[1].Description)

	assert.Empty(t, fx.listener.Toasts(entity.ToastFilter{
		Audience: entity.AudienceCustomer, RecipientIDs: []entity.ID{"8"},
	}))
}

func TestNotificationListener_DropsBadEvents(t *testing.T) {
	fx := createTestNotificationListener(t)
	ctx := context.Background()

	fx.transport.EXPECT().
		Run(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string, handler service.PushHandler) error {
			handler.OnConnect()
			handler.OnMessage(service.PushMessage{Event: constants.PushEventOrderUpdate, Data: json.RawMessage(`{oops`)})
			handler.OnMessage(pushMessage(t, constants.PushEventOrderUpdate, map[string]any{"status": "accepted"}))
			handler.OnMessage(pushMessage(t, "orderDeleted", map[string]any{"order_id": 1}))

			return nil
		})

	require.NoError(t, fx.listener.Start(ctx))
	assert.Empty(t, fx.listener.Toasts(entity.ToastFilter{}))
}

func TestNotificationListener_ErrorDisconnects(t *testing.T) {
	fx := createTestNotificationListener(t)
	ctx := context.Background()

	var afterError entity.ConnectionState
	fx.transport.EXPECT().
		Run(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string, handler service.PushHandler) error {
			handler.OnConnect()
			handler.OnError(errors.New("connection reset"))
			afterError = fx.listener.State()

			return errors.New("dial failed")
		})

	err := fx.listener.Start(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrTransportDisconnected)
	assert.Equal(t, entity.ConnectionDisconnected, afterError)
}

func TestNotificationListener_CancelledContextIsNotAnError(t *testing.T) {
	fx := createTestNotificationListener(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.transport.EXPECT().Run(ctx, mock.Anything, mock.Anything).Return(context.Canceled)

	assert.NoError(t, fx.listener.Start(ctx))
}

func TestNotificationListener_NotifierFailureIsLogged(t *testing.T) {
	transport := mockSvc.NewMockPushTransport(t)
	notifier := mockSvc.NewMockNotifier(t)
	board := notification.NewToastBoard(time.Minute)
	listener := NewNotificationListener(transport, notifier, board, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	notifier.EXPECT().Notify(ctx, mock.AnythingOfType("*entity.Toast")).Return(errors.New("full"))
	transport.EXPECT().
		Run(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string, handler service.PushHandler) error {
			handler.OnMessage(pushMessage(t, constants.PushEventOrderCreate, map[string]any{"order_id": 1, "shop_id": 2}))

			return nil
		})

	assert.NoError(t, listener.Start(ctx))
}
