package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service usecase.CatalogUsecase
	api     *mockSvc.MockStorefrontAPI
	qr      *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	api := mockSvc.NewMockStorefrontAPI(t)
	qr := mockSvc.NewMockQRCodeService(t)

	return catalogServiceFixtures{
		service: NewCatalogService(api, qr, slog.New(slog.NewTextHandler(io.Discard, nil))),
		api:     api,
		qr:      qr,
	}
}

var testShops = []*entity.Shop{
	{ID: "s1", Name: "Noodle Bar"},
	{ID: "s2", Name: "Juice Stand"},
}

func TestCatalogService_ListShops(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListShops(mock.Anything).Return(testShops, nil).Once()

	shops, err := fx.service.ListShops(ctx)
	require.NoError(t, err)
	assert.Equal(t, testShops, shops)
}

func TestCatalogService_ListShops_DegradesToEmpty(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListShops(mock.Anything).Return(nil, domainerrors.ErrNetworkFailure)

	shops, err := fx.service.ListShops(ctx)
	require.NoError(t, err)
	assert.NotNil(t, shops)
	assert.Empty(t, shops)
}

func TestCatalogService_ListMenuItems(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListMenuItems(mock.Anything, entity.ID("s1")).Return([]*entity.MenuItem{
		{ID: "m1", Name: "Ramen", Price: decimal.NewFromInt(120)},
	}, nil).Once()
	fx.api.EXPECT().ListMenuItems(mock.Anything, entity.ID("s2")).Return(nil, domainerrors.ErrNetworkFailure).Once()

	items, err := fx.service.ListMenuItems(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.ID("s1"), items[0].ShopID)

	items, err = fx.service.ListMenuItems(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = fx.service.ListMenuItems(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_FindShop(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListShops(mock.Anything).Return(testShops, nil).Twice()

	shop, err := fx.service.FindShop(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "Juice Stand", shop.Name)

	_, err = fx.service.FindShop(ctx, "s9")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_FindShop_PropagatesNetworkFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListShops(mock.Anything).Return(nil, domainerrors.ErrNetworkFailure)

	_, err := fx.service.FindShop(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
}

func TestCatalogService_FindMenuItem(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListMenuItems(mock.Anything, entity.ID("s1")).Return([]*entity.MenuItem{
		{ID: "m1", Name: "Ramen"},
		{ID: "m2", Name: "Gyoza"},
	}, nil)

	item, err := fx.service.FindMenuItem(ctx, "s1", "m2")
	require.NoError(t, err)
	assert.Equal(t, "Gyoza", item.Name)

	_, err = fx.service.FindMenuItem(ctx, "s1", "m9")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_PaymentQR(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	amount := decimal.RequireFromString("150.50")

	fx.api.EXPECT().ListShops(mock.Anything).Return(testShops, nil)
	fx.qr.EXPECT().GeneratePaymentQR(entity.ID("s1"), amount).Return([]byte("png"), nil)

	png, err := fx.service.PaymentQR(ctx, "s1", amount)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.PaymentQR(ctx, "s1", decimal.Zero)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.PaymentQR(ctx, "s9", amount)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_SharedFetchOutlivesCancelledCaller(t *testing.T) {
	fx := createTestCatalogService(t)
	firstCtx, cancelFirst := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})

	fx.api.EXPECT().ListShops(mock.Anything).RunAndReturn(func(ctx context.Context) ([]*entity.Shop, error) {
		close(started)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-release:
			return testShops, nil
		}
	}).Once()

	firstErr := make(chan error, 1)
	go func() {
		_, err := fx.service.FindShop(firstCtx, "s1")
		firstErr <- err
	}()
	<-started

	type result struct {
		shop *entity.Shop
		err  error
	}
	second := make(chan result, 1)
	go func() {
		shop, err := fx.service.FindShop(context.Background(), "s1")
		second <- result{shop: shop, err: err}
	}()
	// give the second caller time to join the in-flight fetch
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)
	close(release)

	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "Noodle Bar", res.shop.Name)
}
