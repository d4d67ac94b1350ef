//go:build property

package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/syncbus"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func TestCartQuantityMatchesOperationCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("quantities follow adds minus effective removes", prop.ForAll(
		func(ops []int) bool {
			_, ok := applyCartOps(ops)

			return ok
		},
		gen.SliceOf(gen.IntRange(0, 7)),
	))

	properties.Property("adding from another shop never changes the cart", prop.ForAll(
		func(n int) bool {
			ctx := context.Background()
			cart := NewCartService(storage.NewMemoryStore(), syncbus.NewBus(), slog.New(slog.NewTextHandler(io.Discard, nil)))
			cart.Hydrate(ctx)

			for i := 0; i < n; i++ {
				item := entity.CartLineItem{ItemID: entity.ID(fmt.Sprintf("i%d", i%3)), UnitPrice: decimal.NewFromInt(1)}
				if _, err := cart.AddItem(ctx, item, "s1"); err != nil {
					return false
				}
			}

			before := cart.TotalQuantity()
			_, err := cart.AddItem(ctx, entity.CartLineItem{ItemID: "x", UnitPrice: decimal.NewFromInt(1)}, "s2")

			return err != nil && cart.TotalQuantity() == before && cart.ShopID() == "s1"
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
