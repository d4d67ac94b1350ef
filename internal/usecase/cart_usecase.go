package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartUsecase is the cart engine of one session. A cart only ever holds items of one shop.
type CartUsecase interface {
	// Hydrate loads the last persisted snapshot. Missing or corrupt data yields an empty cart.
	Hydrate(ctx context.Context)

	// AddItem increments the line for item or appends it with quantity 1.
	// It fails with ErrCrossShopConflict when the cart holds items of another shop.
	AddItem(ctx context.Context, item entity.CartLineItem, shopID entity.ID) (*entity.CartSummary, error)

	// RemoveItem decrements the line for itemID, deleting it at zero. Absent items are a no-op.
	RemoveItem(ctx context.Context, itemID entity.ID) (*entity.CartSummary, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// OnShopChange clears the cart when newShopID differs from the cart's shop.
	OnShopChange(ctx context.Context, newShopID entity.ID) error

	Items() entity.CartSnapshot
	ShopID() entity.ID
	TotalQuantity() int
	TotalPrice() decimal.Decimal
	UniqueItemCount() int
	Summary() *entity.CartSummary

	// ToggleSidebar flips the persisted sidebar flag and announces it on the bus.
	ToggleSidebar(ctx context.Context) (bool, error)

	// SidebarOpen reads the persisted sidebar flag.
	SidebarOpen(ctx context.Context) bool
}
