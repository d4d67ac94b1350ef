package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store   repository.KeyValueStore
	decoder service.SessionDecoder
	cart    usecase.CartUsecase
	logger  *slog.Logger
	now     func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	store repository.KeyValueStore,
	decoder service.SessionDecoder,
	cart usecase.CartUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:   store,
		decoder: decoder,
		cart:    cart,
		logger:  logger,
		now:     time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve decodes the stored token into a session state.
func (srv *sessionService) Resolve(ctx context.Context) (*entity.SessionState, error) {
	token, found, err := srv.store.Read(ctx, constants.StorageKeyToken)
	if err != nil {
		srv.log(ctx).Warn("Failed to read session token", slog.Any("error", err))

		return loggedOut(), nil
	}
	if !found || token == "" {
		return loggedOut(), nil
	}

	identity, err := srv.validate(token)
	if err != nil {
		srv.log(ctx).Info("Discarding stored session token", slog.Any("reason", err))
		srv.dropToken(ctx)

		return loggedOut(), nil
	}

	return stateFor(identity), nil
}

// Gate applies the role redirect policy to page.
func (srv *sessionService) Gate(ctx context.Context, page entity.Page) (*entity.GateDecision, error) {
	if !page.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown page: " + string(page))
	}

	state, err := srv.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	decision := &entity.GateDecision{Page: page, Allowed: true, Session: state}

	switch page {
	case entity.PageStorefront:
		if state.Status == entity.SessionOwner {
			decision.Allowed = false
			decision.RedirectTo = constants.PathShopDashboard
		}
	case entity.PageOwnerDashboard:
		if state.Status != entity.SessionOwner {
			decision.Allowed = false
			decision.RedirectTo = constants.PathHome
		}
	case entity.PageOrders, entity.PageCheckout:
		if !state.LoggedIn() {
			decision.Allowed = false
			decision.RedirectTo = constants.PathHome
		}
	}

	return decision, nil
}

// Login stores a decodable, unexpired token.
func (srv *sessionService) Login(ctx context.Context, token string) (*entity.SessionState, error) {
	token = strings.TrimSpace(token)

	identity, err := srv.validate(token)
	if err != nil {
		return nil, err
	}

	if err := srv.store.Write(ctx, constants.StorageKeyToken, token); err != nil {
		srv.log(ctx).Error("Failed to store session token", slog.Any("error", err))

		return nil, storageFailure(err)
	}

	srv.log(ctx).Info("Session started",
		slog.String("subject_id", identity.SubjectID.String()),
		slog.String("role", identity.Role.String()),
	)

	return stateFor(identity), nil
}

// Logout removes the token and clears the cart.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.store.Remove(ctx, constants.StorageKeyToken); err != nil {
		srv.log(ctx).Error("Failed to remove session token", slog.Any("error", err))

		return storageFailure(err)
	}

	if err := srv.cart.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear cart on logout")
	}

	srv.log(ctx).Info("Session ended")

	return nil
}

// BearerToken returns the stored token for authenticated backend calls.
func (srv *sessionService) BearerToken(ctx context.Context) (string, *entity.SessionIdentity, error) {
	token, found, err := srv.store.Read(ctx, constants.StorageKeyToken)
	if err != nil {
		return "", nil, storageFailure(err)
	}
	if !found || token == "" {
		return "", nil, domainerrors.ErrUnauthenticated
	}

	identity, err := srv.validate(token)
	if err != nil {
		srv.log(ctx).Info("Discarding stored session token", slog.Any("reason", err))
		srv.dropToken(ctx)

		return "", nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	return token, identity, nil
}

// HandleBackendRejection logs out when the backend refused the token.
func (srv *sessionService) HandleBackendRejection(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, domainerrors.ErrUnauthenticated) {
		return err
	}

	srv.log(ctx).Warn("Backend rejected session token, logging out", slog.Any("error", err))
	if logoutErr := srv.Logout(ctx); logoutErr != nil {
		srv.log(ctx).Error("Failed to log out after rejection", slog.Any("error", logoutErr))
	}

	return err
}

// validate decodes token and enforces expiry and the known role set.
func (srv *sessionService) validate(token string) (*entity.SessionIdentity, error) {
	identity, err := srv.decoder.Decode(token)
	if err != nil {
		return nil, err
	}
	if identity.IsExpired(srv.now()) {
		return nil, domainerrors.ErrTokenExpired
	}
	if !identity.Role.IsValid() {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("unknown role: " + identity.Role.String())
	}

	return identity, nil
}

func (srv *sessionService) dropToken(ctx context.Context) {
	if err := srv.store.Remove(ctx, constants.StorageKeyToken); err != nil {
		srv.log(ctx).Warn("Failed to remove session token", slog.Any("error", err))
	}
}

func loggedOut() *entity.SessionState {
	return &entity.SessionState{Status: entity.SessionLoggedOut}
}

func stateFor(identity *entity.SessionIdentity) *entity.SessionState {
	status := entity.SessionCustomer
	if identity.Role.IsOwner() {
		status = entity.SessionOwner
	}

	return &entity.SessionState{Status: status, Identity: identity}
}
