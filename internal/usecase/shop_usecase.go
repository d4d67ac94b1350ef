package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CatalogUsecase serves read-only shop data shared by all sessions.
type CatalogUsecase interface {
	// ListShops returns all shops, or an empty list when the backend is unreachable.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// ListMenuItems returns the menu of a shop, or an empty list when the backend is unreachable.
	ListMenuItems(ctx context.Context, shopID entity.ID) ([]*entity.MenuItem, error)

	// FindShop looks a shop up in the shop list. Backend failures are returned, not degraded.
	FindShop(ctx context.Context, shopID entity.ID) (*entity.Shop, error)

	// FindMenuItem looks an item up in the menu of a shop. Backend failures are returned, not degraded.
	FindMenuItem(ctx context.Context, shopID, itemID entity.ID) (*entity.MenuItem, error)

	// PaymentQR renders a PNG QR code for paying amount to the shop.
	PaymentQR(ctx context.Context, shopID entity.ID, amount decimal.Decimal) ([]byte, error)
}

// ShopUsecase holds the session-scoped shop operations.
type ShopUsecase interface {
	// SelectShop persists the selected shop and clears a cart of another shop.
	SelectShop(ctx context.Context, shopID entity.ID) (*entity.Shop, error)

	// SelectedShop returns the persisted selection, or nil.
	SelectedShop(ctx context.Context) (*entity.Shop, error)

	// AddToCart adds a menu item of shopID to the cart. It requires a customer session.
	AddToCart(ctx context.Context, shopID, itemID entity.ID) (*entity.CartSummary, error)

	Profile(ctx context.Context) (*entity.Profile, error)

	// Owner operations
	OwnerShops(ctx context.Context) ([]*entity.Shop, error)
	AddMenuItem(ctx context.Context, shopID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, shopID, itemID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error)
}
