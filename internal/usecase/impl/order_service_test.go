package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_ListUserOrders(t *testing.T) {
	fx := createTestStorefront(t, customerToken)
	ctx := context.Background()

	fx.api.EXPECT().ListUserOrders(ctx, customerToken, entity.ID("5")).
		Return([]*entity.Order{{OrderID: "1"}, {OrderID: "2"}}, nil)

	orders, err := fx.orders.ListUserOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_ListUserOrders_Degrades(t *testing.T) {
	fx := createTestStorefront(t, customerToken)
	ctx := context.Background()

	fx.api.EXPECT().ListUserOrders(ctx, customerToken, entity.ID("5")).Return(nil, domainerrors.ErrNetworkFailure)

	orders, err := fx.orders.ListUserOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_ListUserOrders_RejectedToken(t *testing.T) {
	fx := createTestStorefront(t, customerToken)
	ctx := context.Background()

	fx.api.EXPECT().ListUserOrders(ctx, customerToken, entity.ID("5")).Return(nil, domainerrors.ErrUnauthenticated)

	_, err := fx.orders.ListUserOrders(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	state, err := fx.session.Resolve(ctx)
	require.NoError(t, err)
	assert.False(t, state.LoggedIn())
}

func TestOrderService_ListShopOrders(t *testing.T) {
	fx := createTestStorefront(t, ownerToken)
	ctx := context.Background()

	fx.api.EXPECT().ListShopOrders(ctx, ownerToken).Return([]*entity.Order{{OrderID: "3"}}, nil)

	orders, err := fx.orders.ListShopOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	customer := createTestStorefront(t, customerToken)
	_, err = customer.orders.ListShopOrders(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_OrderDetails(t *testing.T) {
	fx := createTestStorefront(t, customerToken)
	ctx := context.Background()

	fx.api.EXPECT().GetOrderDetails(ctx, customerToken, entity.ID("3")).
		Return([]*entity.OrderItem{{ItemName: "Ramen", Quantity: 2}}, nil)

	items, err := fx.orders.OrderDetails(ctx, "3")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ramen", items[0].ItemName)

	_, err = fx.orders.OrderDetails(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestStorefront(t, ownerToken)
	ctx := context.Background()

	fx.api.EXPECT().UpdateOrderStatus(ctx, ownerToken, entity.ID("3"), entity.OrderAccepted).Return(nil)

	require.NoError(t, fx.orders.UpdateOrderStatus(ctx, "3", entity.OrderAccepted))
	assert.ErrorIs(t, fx.orders.UpdateOrderStatus(ctx, "3", entity.OrderStatus("cooking")), domainerrors.ErrInvalidStatus)
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	fx := createTestStorefront(t, ownerToken)
	ctx := context.Background()

	fx.api.EXPECT().GetPaymentID(ctx, ownerToken, entity.ID("3")).Return(entity.ID("p-9"), nil)
	fx.api.EXPECT().UpdatePaymentStatus(ctx, ownerToken, entity.ID("p-9"), entity.PaymentVerified).Return(nil)

	require.NoError(t, fx.orders.UpdatePaymentStatus(ctx, "3", entity.PaymentVerified))
	assert.ErrorIs(t, fx.orders.UpdatePaymentStatus(ctx, "3", entity.PaymentStatus("maybe")), domainerrors.ErrInvalidStatus)
}

func TestOrderService_UpdatePaymentStatus_LookupFailure(t *testing.T) {
	fx := createTestStorefront(t, ownerToken)
	ctx := context.Background()

	fx.api.EXPECT().GetPaymentID(ctx, ownerToken, entity.ID("3")).Return(entity.ID(""), domainerrors.ErrNotFound)

	assert.ErrorIs(t, fx.orders.UpdatePaymentStatus(ctx, "3", entity.PaymentRejected), domainerrors.ErrNotFound)
}
