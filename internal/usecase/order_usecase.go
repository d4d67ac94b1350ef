package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase lists and updates orders for the current session.
type OrderUsecase interface {
	// ListUserOrders returns the customer's orders, or an empty list when the backend is unreachable.
	ListUserOrders(ctx context.Context) ([]*entity.Order, error)

	// ListShopOrders returns the owner's incoming orders, or an empty list when the backend is unreachable.
	ListShopOrders(ctx context.Context) ([]*entity.Order, error)

	OrderDetails(ctx context.Context, orderID entity.ID) ([]*entity.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, orderID entity.ID, status entity.OrderStatus) error

	// UpdatePaymentStatus resolves the order's payment id before updating it.
	UpdatePaymentStatus(ctx context.Context, orderID entity.ID, status entity.PaymentStatus) error
}
