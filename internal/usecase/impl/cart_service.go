package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// cartService implements the CartUsecase interface.
// A mutation computes the next snapshot, persists it, and only then replaces the in-memory state
// and publishes cartUpdated, so a failed write leaves both the cart and subscribers untouched.
type cartService struct {
	mu     sync.Mutex
	items  entity.CartSnapshot
	store  repository.KeyValueStore
	events service.CartEvents
	logger *slog.Logger
}

// NewCartService creates an empty cart engine. Call Hydrate before use.
func NewCartService(store repository.KeyValueStore, events service.CartEvents, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		items:  entity.CartSnapshot{},
		store:  store,
		events: events,
		logger: logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Hydrate loads the last persisted snapshot.
func (srv *cartService) Hydrate(ctx context.Context) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = entity.CartSnapshot{}

	raw, found, err := srv.store.Read(ctx, constants.StorageKeyCartItems)
	if err != nil {
		srv.log(ctx).Warn("Failed to read cart snapshot, starting empty", slog.Any("error", err))

		return
	}
	if !found {
		return
	}

	var snapshot entity.CartSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		srv.log(ctx).Warn("Corrupt cart snapshot, starting empty", slog.Any("error", err))

		return
	}
	if !snapshot.Valid() {
		srv.log(ctx).Warn("Cart snapshot violates cart rules, starting empty",
			slog.Int("lines", len(snapshot)),
		)

		return
	}

	srv.items = snapshot
}

// AddItem adds one unit of item from shopID.
func (srv *cartService) AddItem(ctx context.Context, item entity.CartLineItem, shopID entity.ID) (*entity.CartSummary, error) {
	if item.ItemID.IsZero() || shopID.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("item id and shop id are required")
	}
	if item.UnitPrice.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	srv.mu.Lock()
	current := srv.items
	if len(current) > 0 && current.ShopID() != shopID {
		srv.mu.Unlock()
		srv.log(ctx).Info("Rejected item from another shop",
			slog.String("cart_shop_id", current.ShopID().String()),
			slog.String("shop_id", shopID.String()),
		)

		return nil, domainerrors.ErrCrossShopConflict
	}

	next := current.Clone()
	if idx := next.IndexOf(item.ItemID); idx >= 0 {
		next[idx].Quantity++
	} else {
		item.ShopID = shopID
		item.Quantity = 1
		next = append(next, item)
	}

	summary, count, err := srv.commitLocked(ctx, next)
	srv.mu.Unlock()
	if err != nil {
		return nil, err
	}

	srv.events.PublishCartUpdated(count)

	return summary, nil
}

// RemoveItem removes one unit of itemID.
func (srv *cartService) RemoveItem(ctx context.Context, itemID entity.ID) (*entity.CartSummary, error) {
	srv.mu.Lock()
	idx := srv.items.IndexOf(itemID)
	if idx < 0 {
		summary := entity.Summarize(srv.items)
		srv.mu.Unlock()

		return summary, nil
	}

	next := srv.items.Clone()
	next[idx].Quantity--
	if next[idx].Quantity < 1 {
		next = append(next[:idx], next[idx+1:]...)
	}

	summary, count, err := srv.commitLocked(ctx, next)
	srv.mu.Unlock()
	if err != nil {
		return nil, err
	}

	srv.events.PublishCartUpdated(count)

	return summary, nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	_, count, err := srv.commitLocked(ctx, entity.CartSnapshot{})
	srv.mu.Unlock()
	if err != nil {
		return err
	}

	srv.events.PublishCartUpdated(count)

	return nil
}

// OnShopChange clears a cart that belongs to another shop.
func (srv *cartService) OnShopChange(ctx context.Context, newShopID entity.ID) error {
	srv.mu.Lock()
	current := srv.items.ShopID()
	srv.mu.Unlock()

	if current.IsZero() || current == newShopID {
		return nil
	}

	srv.log(ctx).Info("Shop changed, clearing cart",
		slog.String("cart_shop_id", current.String()),
		slog.String("shop_id", newShopID.String()),
	)

	return srv.Clear(ctx)
}

// commitLocked persists next and swaps it in. Callers hold mu.
func (srv *cartService) commitLocked(ctx context.Context, next entity.CartSnapshot) (*entity.CartSummary, int, error) {
	data, err := json.Marshal(next)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to encode cart snapshot")
	}

	if err := srv.store.Write(ctx, constants.StorageKeyCartItems, string(data)); err != nil {
		srv.log(ctx).Error("Failed to persist cart snapshot", slog.Any("error", err))

		return nil, 0, storageFailure(err)
	}

	srv.items = next

	return entity.Summarize(next), next.UniqueItemCount(), nil
}

// Items returns a copy of the current lines.
func (srv *cartService) Items() entity.CartSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.Clone()
}

// ShopID returns the shop of a non-empty cart.
func (srv *cartService) ShopID() entity.ID {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.ShopID()
}

// TotalQuantity returns the sum of quantities.
func (srv *cartService) TotalQuantity() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.TotalQuantity()
}

// TotalPrice returns the sum of line totals.
func (srv *cartService) TotalPrice() decimal.Decimal {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.TotalPrice()
}

// UniqueItemCount returns the number of lines.
func (srv *cartService) UniqueItemCount() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.items.UniqueItemCount()
}

// Summary returns the current read model.
func (srv *cartService) Summary() *entity.CartSummary {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return entity.Summarize(srv.items)
}

// ToggleSidebar flips cartSidebarState and publishes cartToggle.
func (srv *cartService) ToggleSidebar(ctx context.Context) (bool, error) {
	open := !srv.SidebarOpen(ctx)

	if err := srv.store.Write(ctx, constants.StorageKeyCartSidebarState, strconv.FormatBool(open)); err != nil {
		srv.log(ctx).Error("Failed to persist sidebar state", slog.Any("error", err))

		return !open, storageFailure(err)
	}

	srv.events.PublishCartToggle()

	return open, nil
}

// SidebarOpen reads cartSidebarState. Missing or unreadable values mean closed.
func (srv *cartService) SidebarOpen(ctx context.Context) bool {
	raw, found, err := srv.store.Read(ctx, constants.StorageKeyCartSidebarState)
	if err != nil {
		srv.log(ctx).Warn("Failed to read sidebar state", slog.Any("error", err))

		return false
	}
	if !found {
		return false
	}

	open, err := strconv.ParseBool(raw)
	if err != nil {
		srv.log(ctx).Warn("Corrupt sidebar state", slog.String("value", raw))

		return false
	}

	return open
}

// storageFailure keeps an AppError from the store and wraps anything else as ErrStorageFailure.
func storageFailure(err error) error {
	if errors.Is(err, domainerrors.ErrStorageFailure) {
		return err
	}

	return domainerrors.NewStorageExecuteError(err, "store write failed")
}
