package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/syncbus"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service usecase.CartUsecase
	store   repository.KeyValueStore
	bus     *syncbus.Bus
	counts  []int
}

func createTestCartService(t *testing.T) *cartServiceFixtures {
	fx := &cartServiceFixtures{
		store: storage.NewMemoryStore(),
		bus:   syncbus.NewBus(),
	}
	unsubscribe := fx.bus.SubscribeCartUpdated(func(count int) {
		fx.counts = append(fx.counts, count)
	})
	t.Cleanup(unsubscribe)

	fx.service = NewCartService(fx.store, fx.bus, slog.New(slog.NewTextHandler(io.Discard, nil)))
	fx.service.Hydrate(context.Background())

	return fx
}

func lineItem(itemID string, price int64) entity.CartLineItem {
	return entity.CartLineItem{
		ItemID:    entity.ID(itemID),
		Name:      "item " + itemID,
		UnitPrice: decimal.NewFromInt(price),
	}
}

func TestCartService_AddItem_SameItemTwice(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, lineItem("i1", 100), "s1")
	require.NoError(t, err)
	summary, err := fx.service.AddItem(ctx, lineItem("i1", 100), "s1")
	require.NoError(t, err)

	items := fx.service.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, entity.ID("s1"), items[0].ShopID)
	assert.True(t, decimal.NewFromInt(200).Equal(fx.service.TotalPrice()))
	assert.Equal(t, 1, fx.service.UniqueItemCount())
	assert.Equal(t, 2, fx.service.TotalQuantity())

	assert.Equal(t, 1, summary.UniqueItemCount)
	assert.True(t, decimal.NewFromInt(200).Equal(summary.TotalPrice))
	assert.Equal(t, []int{1, 1}, fx.counts)
}

func TestCartService_AddItem_CrossShopRejected(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, lineItem("i1", 50), "s1")
	require.NoError(t, err)

	_, err = fx.service.AddItem(ctx, lineItem("i2", 70), "s2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCrossShopConflict)
	assert.Equal(t, "items must be from one shop", err.Error())

	items := fx.service.Items()
	require.Len(t, items, 1)
	assert.Equal(t, entity.ID("i1"), items[0].ItemID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, []int{1}, fx.counts, "rejected add must not publish")
}

func TestCartService_AddItem_ShopArgumentIsAuthoritative(t *testing.T) {
	fx := createTestCartService(t)

	item := lineItem("i1", 10)
	item.ShopID = "other"
	item.Quantity = 9

	_, err := fx.service.AddItem(context.Background(), item, "s1")
	require.NoError(t, err)

	items := fx.service.Items()
	require.Len(t, items, 1)
	assert.Equal(t, entity.ID("s1"), items[0].ShopID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartService_AddItem_Validation(t *testing.T) {
	tests := []struct {
		name   string
		item   entity.CartLineItem
		shopID entity.ID
	}{
		{name: "missing item id", item: lineItem("", 10), shopID: "s1"},
		{name: "missing shop id", item: lineItem("i1", 10), shopID: ""},
		{name: "negative price", item: lineItem("i1", -1), shopID: "s1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			_, err := fx.service.AddItem(context.Background(), tt.item, tt.shopID)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Empty(t, fx.service.Items())
			assert.Empty(t, fx.counts)
		})
	}
}

func TestCartService_RemoveItem_LastUnitThenHydrate(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, lineItem("i1", 100), "s1")
	require.NoError(t, err)

	summary, err := fx.service.RemoveItem(ctx, "i1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Empty(t, fx.service.Items())
	assert.Empty(t, fx.service.ShopID())

	fresh := NewCartService(fx.store, syncbus.NewBus(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	fresh.Hydrate(ctx)
	assert.Empty(t, fresh.Items())
	assert.Equal(t, []int{1, 0}, fx.counts)
}

func TestCartService_RemoveItem_DecrementsQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	for range 3 {
		_, err := fx.service.AddItem(ctx, lineItem("i1", 5), "s1")
		require.NoError(t, err)
	}
	_, err := fx.service.AddItem(ctx, lineItem("i2", 7), "s1")
	require.NoError(t, err)

	_, err = fx.service.RemoveItem(ctx, "i1")
	require.NoError(t, err)

	items := fx.service.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, fx.service.TotalQuantity())
	assert.True(t, decimal.NewFromInt(17).Equal(fx.service.TotalPrice()))
}

func TestCartService_RemoveItem_MissingIsNoop(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, lineItem("i1", 5), "s1")
	require.NoError(t, err)

	summary, err := fx.service.RemoveItem(ctx, "nope")
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, []int{1}, fx.counts, "no-op remove must not publish")
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, lineItem("i1", 5), "s1")
	require.NoError(t, err)

	require.NoError(t, fx.service.Clear(ctx))
	assert.Empty(t, fx.service.Items())
	assert.Equal(t, []int{1, 0}, fx.counts)

	raw, found, err := fx.store.Read(ctx, constants.StorageKeyCartItems)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[]`, raw)
}

func TestCartService_OnShopChange(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, lineItem("i1", 5), "s1")
	require.NoError(t, err)

	require.NoError(t, fx.service.OnShopChange(ctx, "s1"))
	assert.Len(t, fx.service.Items(), 1)
	assert.Equal(t, []int{1}, fx.counts)

	require.NoError(t, fx.service.OnShopChange(ctx, "s2"))
	assert.Empty(t, fx.service.Items())
	assert.Equal(t, []int{1, 0}, fx.counts)

	// empty cart never clears again
	require.NoError(t, fx.service.OnShopChange(ctx, "s3"))
	assert.Equal(t, []int{1, 0}, fx.counts)
}

func TestCartService_Hydrate(t *testing.T) {
	valid, err := json.Marshal(entity.CartSnapshot{
		{ItemID: "i1", UnitPrice: decimal.NewFromInt(3), ShopID: "s1", Quantity: 2},
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		raw       *string
		wantLines int
	}{
		{name: "missing key", raw: nil, wantLines: 0},
		{name: "valid snapshot", raw: ptr(string(valid)), wantLines: 1},
		{name: "price as string", raw: ptr(`[{"item_id":7,"price":"2.50","shop_id":"s1","quantity":1}]`), wantLines: 1},
		{name: "corrupt json", raw: ptr(`{not json`), wantLines: 0},
		{name: "mixed shops", raw: ptr(`[{"item_id":"a","shop_id":"s1","quantity":1},{"item_id":"b","shop_id":"s2","quantity":1}]`), wantLines: 0},
		{name: "zero quantity", raw: ptr(`[{"item_id":"a","shop_id":"s1","quantity":0}]`), wantLines: 0},
		{name: "negative price", raw: ptr(`[{"item_id":"a","price":"-1.00","shop_id":"s1","quantity":1}]`), wantLines: 0},
		{name: "zero price", raw: ptr(`[{"item_id":"a","price":0,"shop_id":"s1","quantity":1}]`), wantLines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStore()
			if tt.raw != nil {
				require.NoError(t, store.Write(ctx, constants.StorageKeyCartItems, *tt.raw))
			}

			cart := NewCartService(store, syncbus.NewBus(), slog.New(slog.NewTextHandler(io.Discard, nil)))
			cart.Hydrate(ctx)

			assert.Len(t, cart.Items(), tt.wantLines)
		})
	}
}

func TestCartService_HydrateAfterClearRoundTrip(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, lineItem("i1", 5), "s1")
	require.NoError(t, err)
	require.NoError(t, fx.service.Clear(ctx))

	fx.service.Hydrate(ctx)
	assert.Empty(t, fx.service.Items())
}

func TestCartService_Sidebar(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	toggles := 0
	t.Cleanup(fx.bus.SubscribeCartToggle(func() { toggles++ }))

	assert.False(t, fx.service.SidebarOpen(ctx))

	open, err := fx.service.ToggleSidebar(ctx)
	require.NoError(t, err)
	assert.True(t, open)
	assert.True(t, fx.service.SidebarOpen(ctx))

	open, err = fx.service.ToggleSidebar(ctx)
	require.NoError(t, err)
	assert.False(t, open)
	assert.Equal(t, 2, toggles)

	raw, _, err := fx.store.Read(ctx, constants.StorageKeyCartSidebarState)
	require.NoError(t, err)
	assert.Equal(t, "false", raw)
}

func TestCartService_SubscriberReadsCommittedState(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	var seen int
	t.Cleanup(fx.bus.SubscribeCartUpdated(func(int) {
		seen = fx.service.TotalQuantity()
	}))

	_, err := fx.service.AddItem(ctx, lineItem("i1", 5), "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

// applyCartOps replays ops against a fresh cart: even values add, odd values remove, op/2 picks the item.
func applyCartOps(ops []int) (qty map[string]int, ok bool) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	bus := syncbus.NewBus()

	var published []int
	unsubscribe := bus.SubscribeCartUpdated(func(count int) { published = append(published, count) })
	defer unsubscribe()

	cart := NewCartService(store, bus, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cart.Hydrate(ctx)

	model := map[string]int{}
	expectedPublishes := 0
	for _, op := range ops {
		itemID := fmt.Sprintf("i%d", op/2)
		if op%2 == 0 {
			item := entity.CartLineItem{ItemID: entity.ID(itemID), UnitPrice: decimal.NewFromInt(int64(op))}
			if _, err := cart.AddItem(ctx, item, "s1"); err != nil {
				return nil, false
			}
			model[itemID]++
			expectedPublishes++

			continue
		}

		if _, err := cart.RemoveItem(ctx, entity.ID(itemID)); err != nil {
			return nil, false
		}
		if model[itemID] > 0 {
			model[itemID]--
			if model[itemID] == 0 {
				delete(model, itemID)
			}
			expectedPublishes++
		}
	}

	if len(published) != expectedPublishes {
		return nil, false
	}
	if len(published) > 0 && published[len(published)-1] != cart.UniqueItemCount() {
		return nil, false
	}

	got := map[string]int{}
	for _, line := range cart.Items() {
		if line.Quantity < 1 {
			return nil, false
		}
		got[line.ItemID.String()] = line.Quantity
	}

	reloaded := NewCartService(store, syncbus.NewBus(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	reloaded.Hydrate(ctx)
	if reloaded.TotalQuantity() != cart.TotalQuantity() {
		return nil, false
	}

	for id, n := range model {
		if got[id] != n {
			return nil, false
		}
	}

	return got, len(got) == len(model)
}

func TestCartService_OperationSequences(t *testing.T) {
	tests := []struct {
		name string
		ops  []int
		want map[string]int
	}{
		{name: "empty", ops: nil, want: map[string]int{}},
		{name: "remove from empty cart", ops: []int{1, 3}, want: map[string]int{}},
		{name: "adds accumulate", ops: []int{0, 0, 2}, want: map[string]int{"i0": 2, "i1": 1}},
		{name: "remove after add", ops: []int{0, 0, 1}, want: map[string]int{"i0": 1}},
		{name: "remove past zero", ops: []int{2, 3, 3, 3}, want: map[string]int{}},
		{name: "interleaved items", ops: []int{0, 2, 4, 6, 1, 5, 0, 7, 7}, want: map[string]int{"i0": 1, "i1": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := applyCartOps(tt.ops)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
