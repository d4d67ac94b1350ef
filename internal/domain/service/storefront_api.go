package service

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// StorefrontAPI is the REST backend of the storefront. Transport failures and 5xx answers surface
// as ErrNetworkFailure, 401/403 as ErrUnauthenticated and 404 as ErrNotFound.
type StorefrontAPI interface {
	ListShops(ctx context.Context) ([]*entity.Shop, error)
	ListMenuItems(ctx context.Context, shopID entity.ID) ([]*entity.MenuItem, error)
	ListOwnerShops(ctx context.Context, token string) ([]*entity.Shop, error)
	AddMenuItem(ctx context.Context, token string, shopID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, token string, shopID, itemID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error)
	GetProfile(ctx context.Context, token string) (*entity.Profile, error)

	// UploadImage posts a multipart image and returns its public URL
	UploadImage(ctx context.Context, filename string, image io.Reader) (string, error)

	VerifyPaymentAndCreateOrder(ctx context.Context, token string, req *entity.CheckoutRequest) (*entity.Order, error)
	ListUserOrders(ctx context.Context, token string, userID entity.ID) ([]*entity.Order, error)
	ListShopOrders(ctx context.Context, token string) ([]*entity.Order, error)
	GetOrderDetails(ctx context.Context, token string, orderID entity.ID) ([]*entity.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID entity.ID, status entity.OrderStatus) error

	// GetPaymentID resolves the payment record attached to an order
	GetPaymentID(ctx context.Context, token string, orderID entity.ID) (entity.ID, error)
	UpdatePaymentStatus(ctx context.Context, token string, paymentID entity.ID, status entity.PaymentStatus) error
}
