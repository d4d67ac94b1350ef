package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// shopService implements the ShopUsecase interface for one session.
type shopService struct {
	store   repository.KeyValueStore
	catalog usecase.CatalogUsecase
	cart    usecase.CartUsecase
	session usecase.SessionUsecase
	api     service.StorefrontAPI
	logger  *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(
	store repository.KeyValueStore,
	catalog usecase.CatalogUsecase,
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	api service.StorefrontAPI,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		store:   store,
		catalog: catalog,
		cart:    cart,
		session: session,
		api:     api,
		logger:  logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SelectShop persists the selection, then drops a cart that belongs to another shop.
func (srv *shopService) SelectShop(ctx context.Context, shopID entity.ID) (*entity.Shop, error) {
	shop, err := srv.catalog.FindShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(shop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode selected shop")
	}
	if err := srv.store.Write(ctx, constants.StorageKeySelectedShop, string(data)); err != nil {
		srv.log(ctx).Error("Failed to persist selected shop", slog.Any("error", err))

		return nil, storageFailure(err)
	}

	if err := srv.cart.OnShopChange(ctx, shop.ID); err != nil {
		return nil, err
	}

	return shop, nil
}

// SelectedShop returns the persisted selection, or nil when none is stored.
func (srv *shopService) SelectedShop(ctx context.Context) (*entity.Shop, error) {
	raw, found, err := srv.store.Read(ctx, constants.StorageKeySelectedShop)
	if err != nil {
		srv.log(ctx).Warn("Failed to read selected shop", slog.Any("error", err))

		return nil, nil
	}
	if !found {
		return nil, nil
	}

	var shop entity.Shop
	if err := json.Unmarshal([]byte(raw), &shop); err != nil || shop.ID.IsZero() {
		srv.log(ctx).Warn("Corrupt selected shop, ignoring", slog.String("value", raw))

		return nil, nil
	}

	return &shop, nil
}

// AddToCart resolves the menu item and adds it to the cart of a customer session.
func (srv *shopService) AddToCart(ctx context.Context, shopID, itemID entity.ID) (*entity.CartSummary, error) {
	state, err := srv.session.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	switch state.Status {
	case entity.SessionLoggedOut:
		return nil, domainerrors.ErrUnauthenticated.WithDetails("log in to add items to the cart")
	case entity.SessionOwner:
		return nil, domainerrors.ErrForbidden.WithDetails("shop owners cannot place orders")
	}

	shop, err := srv.catalog.FindShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	item, err := srv.catalog.FindMenuItem(ctx, shopID, itemID)
	if err != nil {
		return nil, err
	}

	return srv.cart.AddItem(ctx, item.ToCartLine(*shop), shop.ID)
}

// Profile fetches the account profile of the session.
func (srv *shopService) Profile(ctx context.Context) (*entity.Profile, error) {
	token, _, err := srv.session.BearerToken(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := srv.api.GetProfile(ctx, token)
	if err != nil {
		return nil, srv.session.HandleBackendRejection(ctx, err)
	}

	return profile, nil
}

// OwnerShops lists the shops managed by the owner session.
func (srv *shopService) OwnerShops(ctx context.Context) ([]*entity.Shop, error) {
	token, err := srv.ownerToken(ctx)
	if err != nil {
		return nil, err
	}

	shops, err := srv.api.ListOwnerShops(ctx, token)
	if err != nil {
		return nil, srv.session.HandleBackendRejection(ctx, err)
	}

	return shops, nil
}

// AddMenuItem creates a menu item in an owned shop.
func (srv *shopService) AddMenuItem(ctx context.Context, shopID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error) {
	if err := checkMenuInput(input); err != nil {
		return nil, err
	}
	token, err := srv.ownerToken(ctx)
	if err != nil {
		return nil, err
	}

	item, err := srv.api.AddMenuItem(ctx, token, shopID, input)
	if err != nil {
		return nil, srv.session.HandleBackendRejection(ctx, err)
	}

	srv.log(ctx).Info("Menu item added",
		slog.String("shop_id", shopID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}

// UpdateMenuItem replaces a menu item in an owned shop.
func (srv *shopService) UpdateMenuItem(ctx context.Context, shopID, itemID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error) {
	if err := checkMenuInput(input); err != nil {
		return nil, err
	}
	token, err := srv.ownerToken(ctx)
	if err != nil {
		return nil, err
	}

	item, err := srv.api.UpdateMenuItem(ctx, token, shopID, itemID, input)
	if err != nil {
		return nil, srv.session.HandleBackendRejection(ctx, err)
	}

	return item, nil
}

func (srv *shopService) ownerToken(ctx context.Context) (string, error) {
	token, identity, err := srv.session.BearerToken(ctx)
	if err != nil {
		return "", err
	}
	if !identity.Role.IsOwner() {
		return "", domainerrors.ErrForbidden.WithDetails("shop owner role required")
	}

	return token, nil
}

func checkMenuInput(input *entity.MenuItemInput) error {
	if input == nil || input.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return nil
}
