package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// catalogService implements the CatalogUsecase interface.
// Concurrent sessions asking for the same list share one backend request.
type catalogService struct {
	api    service.StorefrontAPI
	qr     service.QRCodeService
	logger *slog.Logger
	group  singleflight.Group
}

// NewCatalogService creates the process-wide catalog.
func NewCatalogService(api service.StorefrontAPI, qr service.QRCodeService, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		api:    api,
		qr:     qr,
		logger: logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListShops returns all shops. A failed fetch degrades to an empty list.
func (srv *catalogService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.fetchShops(ctx)
	if err != nil {
		srv.log(ctx).Warn("Shop list unavailable", slog.Any("error", err))

		return []*entity.Shop{}, nil
	}

	return shops, nil
}

// ListMenuItems returns the menu of a shop. A failed fetch degrades to an empty list.
func (srv *catalogService) ListMenuItems(ctx context.Context, shopID entity.ID) ([]*entity.MenuItem, error) {
	if shopID.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shop id is required")
	}

	items, err := srv.fetchMenu(ctx, shopID)
	if err != nil {
		srv.log(ctx).Warn("Menu unavailable",
			slog.String("shop_id", shopID.String()),
			slog.Any("error", err),
		)

		return []*entity.MenuItem{}, nil
	}

	return items, nil
}

// FindShop looks a shop up in the shop list.
func (srv *catalogService) FindShop(ctx context.Context, shopID entity.ID) (*entity.Shop, error) {
	if shopID.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shop id is required")
	}

	shops, err := srv.fetchShops(ctx)
	if err != nil {
		return nil, err
	}

	for _, shop := range shops {
		if shop.ID == shopID {
			return shop, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("shop " + shopID.String())
}

// FindMenuItem looks an item up in the menu of a shop.
func (srv *catalogService) FindMenuItem(ctx context.Context, shopID, itemID entity.ID) (*entity.MenuItem, error) {
	items, err := srv.fetchMenu(ctx, shopID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ID == itemID {
			return item, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("menu item " + itemID.String())
}

// PaymentQR renders a payment QR code for amount.
func (srv *catalogService) PaymentQR(ctx context.Context, shopID entity.ID, amount decimal.Decimal) ([]byte, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	if _, err := srv.FindShop(ctx, shopID); err != nil {
		return nil, err
	}

	png, err := srv.qr.GeneratePaymentQR(shopID, amount)
	if err != nil {
		srv.log(ctx).Error("Failed to render payment QR code", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *catalogService) fetchShops(ctx context.Context) ([]*entity.Shop, error) {
	v, err := srv.share(ctx, "shops", func(flightCtx context.Context) (any, error) {
		return srv.api.ListShops(flightCtx)
	})
	if err != nil {
		return nil, err
	}

	return v.([]*entity.Shop), nil
}

func (srv *catalogService) fetchMenu(ctx context.Context, shopID entity.ID) ([]*entity.MenuItem, error) {
	v, err := srv.share(ctx, "menu:"+shopID.String(), func(flightCtx context.Context) (any, error) {
		items, err := srv.api.ListMenuItems(flightCtx, shopID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.ShopID.IsZero() {
				item.ShopID = shopID
			}
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*entity.MenuItem), nil
}

// share runs fetch once for all concurrent callers of key. The fetch ignores the leader's
// cancellation so other callers still get the result; each caller stops waiting when its own ctx ends.
func (srv *catalogService) share(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	flightCtx := context.WithoutCancel(ctx)
	ch := srv.group.DoChan(key, func() (any, error) {
		return fetch(flightCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}
