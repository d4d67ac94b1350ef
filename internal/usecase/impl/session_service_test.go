package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/syncbus"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentToken = "abc.eyJyb2xlIjoic3R1ZGVudCJ9.sig"

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service usecase.SessionUsecase
	store   repository.KeyValueStore
	cart    usecase.CartUsecase
	bus     *syncbus.Bus
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStore()
	bus := syncbus.NewBus()
	cart := NewCartService(store, bus, logger)
	cart.Hydrate(context.Background())

	return sessionServiceFixtures{
		service: NewSessionService(store, auth.NewTokenDecoder(), cart, logger),
		store:   store,
		cart:    cart,
		bus:     bus,
	}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unknown-to-the-client"))
	require.NoError(t, err)

	return token
}

func TestSessionService_Resolve_StudentPayload(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	require.NoError(t, fx.store.Write(ctx, constants.StorageKeyToken, studentToken))

	state, err := fx.service.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionCustomer, state.Status)
	assert.Equal(t, entity.RoleStudent, state.Identity.Role)

	decision, err := fx.service.Gate(ctx, entity.PageStorefront)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.RedirectTo)
}

func TestSessionService_Resolve_MalformedTokenIsCleared(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	require.NoError(t, fx.store.Write(ctx, constants.StorageKeyToken, "onlyonepart"))

	state, err := fx.service.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionLoggedOut, state.Status)
	assert.False(t, state.LoggedIn())

	_, found, err := fx.store.Read(ctx, constants.StorageKeyToken)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionService_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus entity.SessionStatus
		wantKept   bool
	}{
		{
			name:       "no token",
			wantStatus: entity.SessionLoggedOut,
		},
		{
			name:       "teacher",
			token:      "h.eyJyb2xlIjoidGVhY2hlciJ9.s",
			wantStatus: entity.SessionCustomer,
			wantKept:   true,
		},
		{
			name:       "unknown role",
			token:      "h.eyJyb2xlIjoiYWRtaW4ifQ.s",
			wantStatus: entity.SessionLoggedOut,
		},
		{
			name:       "not json",
			token:      "h.bm90LWpzb24.s",
			wantStatus: entity.SessionLoggedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()
			if tt.token != "" {
				require.NoError(t, fx.store.Write(ctx, constants.StorageKeyToken, tt.token))
			}

			state, err := fx.service.Resolve(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, state.Status)

			_, found, err := fx.store.Read(ctx, constants.StorageKeyToken)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKept, found)
		})
	}
}

func TestSessionService_Resolve_ExpiredSignedToken(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	token := signToken(t, jwt.MapClaims{
		"id":   7,
		"role": "student",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, fx.store.Write(ctx, constants.StorageKeyToken, token))

	state, err := fx.service.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionLoggedOut, state.Status)
}

func TestSessionService_Gate(t *testing.T) {
	owner := "h.eyJyb2xlIjoic2hvcF9vd25lciJ9.s"

	tests := []struct {
		name         string
		token        string
		page         entity.Page
		wantAllowed  bool
		wantRedirect string
	}{
		{name: "owner on storefront", token: owner, page: entity.PageStorefront, wantRedirect: constants.PathShopDashboard},
		{name: "owner on dashboard", token: owner, page: entity.PageOwnerDashboard, wantAllowed: true},
		{name: "student on dashboard", token: studentToken, page: entity.PageOwnerDashboard, wantRedirect: constants.PathHome},
		{name: "anonymous on storefront", page: entity.PageStorefront, wantAllowed: true},
		{name: "anonymous on orders", page: entity.PageOrders, wantRedirect: constants.PathHome},
		{name: "anonymous on checkout", page: entity.PageCheckout, wantRedirect: constants.PathHome},
		{name: "student on checkout", token: studentToken, page: entity.PageCheckout, wantAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()
			if tt.token != "" {
				require.NoError(t, fx.store.Write(ctx, constants.StorageKeyToken, tt.token))
			}

			decision, err := fx.service.Gate(ctx, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.page, decision.Page)
			assert.Equal(t, tt.wantAllowed, decision.Allowed)
			assert.Equal(t, tt.wantRedirect, decision.RedirectTo)
		})
	}
}

func TestSessionService_Gate_UnknownPage(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Gate(context.Background(), entity.Page("admin"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_Login(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	token := signToken(t, jwt.MapClaims{
		"id":    "u-1",
		"email": "student@example.com",
		"role":  "student",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	state, err := fx.service.Login(ctx, " "+token+"\n")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionCustomer, state.Status)
	assert.Equal(t, entity.ID("u-1"), state.Identity.SubjectID)
	assert.Equal(t, "student@example.com", state.Identity.Email)

	stored, found, err := fx.store.Read(ctx, constants.StorageKeyToken)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, token, stored)

	bearer, identity, err := fx.service.BearerToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, bearer)
	assert.Equal(t, entity.RoleStudent, identity.Role)
}

func TestSessionService_Login_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "malformed",
			token:   func(*testing.T) string { return "onlyonepart" },
			wantErr: domainerrors.ErrDecodeFailed,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signToken(t, jwt.MapClaims{"role": "student", "exp": time.Now().Add(-time.Hour).Unix()})
			},
			wantErr: domainerrors.ErrTokenExpired,
		},
		{
			name:    "unknown role",
			token:   func(*testing.T) string { return "h.eyJyb2xlIjoiYWRtaW4ifQ.s" },
			wantErr: domainerrors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()

			_, err := fx.service.Login(ctx, tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)

			_, found, err := fx.store.Read(ctx, constants.StorageKeyToken)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestSessionService_Logout_ClearsCartAndPublishes(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, studentToken)
	require.NoError(t, err)
	_, err = fx.cart.AddItem(ctx, lineItem("i1", 10), "s1")
	require.NoError(t, err)

	var counts []int
	t.Cleanup(fx.bus.SubscribeCartUpdated(func(count int) { counts = append(counts, count) }))

	require.NoError(t, fx.service.Logout(ctx))
	assert.Empty(t, fx.cart.Items())
	assert.Equal(t, []int{0}, counts)

	_, _, err = fx.service.BearerToken(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_HandleBackendRejection(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, studentToken)
	require.NoError(t, err)

	other := errors.New("timeout")
	assert.Equal(t, other, fx.service.HandleBackendRejection(ctx, other))
	state, err := fx.service.Resolve(ctx)
	require.NoError(t, err)
	assert.True(t, state.LoggedIn())

	rejected := errors.Wrap(domainerrors.ErrUnauthenticated, "GET /api/profile")
	assert.Equal(t, rejected, fx.service.HandleBackendRejection(ctx, rejected))
	state, err = fx.service.Resolve(ctx)
	require.NoError(t, err)
	assert.False(t, state.LoggedIn())

	assert.NoError(t, fx.service.HandleBackendRejection(ctx, nil))
}

func TestSessionService_ExpiryUsesClock(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	decoder := mockSvc.NewMockSessionDecoder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cart := NewCartService(store, syncbus.NewBus(), logger)

	exp := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	decoder.EXPECT().Decode("tok").Return(&entity.SessionIdentity{Role: entity.RoleTeacher, ExpiresAt: &exp}, nil)
	require.NoError(t, store.Write(ctx, constants.StorageKeyToken, "tok"))

	srv := NewSessionService(store, decoder, cart, logger).(*sessionService)

	srv.now = func() time.Time { return exp.Add(-time.Second) }
	state, err := srv.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionCustomer, state.Status)

	srv.now = func() time.Time { return exp }
	state, err = srv.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionLoggedOut, state.Status)
}
