// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// CartLineItem is one (item, shop, quantity) tuple in the customer's in-progress order.
type CartLineItem struct {
	ItemID      ID              `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"price"`
	ShopID      ID              `json:"shop_id"`
	ShopName    string          `json:"shop_name"`
	ImageURL    string          `json:"image_url"`
	Quantity    int             `json:"quantity"`
}

// LineTotal returns UnitPrice * Quantity.
func (l CartLineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is the persisted form of a cart: an ordered list of lines,
// written and read as a single unit.
type CartSnapshot []CartLineItem

// UniqueItemCount returns the number of distinct lines.
func (s CartSnapshot) UniqueItemCount() int {
	return len(s)
}

// TotalQuantity returns the sum of all line quantities.
func (s CartSnapshot) TotalQuantity() int {
	total := 0
	for _, line := range s {
		total += line.Quantity
	}

	return total
}

// TotalPrice returns the sum of UnitPrice * Quantity over all lines.
func (s CartSnapshot) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s {
		total = total.Add(line.LineTotal())
	}

	return total
}

// ShopID returns the shop every line belongs to, or "" for an empty cart.
func (s CartSnapshot) ShopID() ID {
	if len(s) == 0 {
		return ""
	}

	return s[0].ShopID
}

// IndexOf returns the position of the line for itemID, or -1.
func (s CartSnapshot) IndexOf(itemID ID) int {
	for i, line := range s {
		if line.ItemID == itemID {
			return i
		}
	}

	return -1
}

// Clone returns an independent copy.
func (s CartSnapshot) Clone() CartSnapshot {
	if s == nil {
		return CartSnapshot{}
	}
	out := make(CartSnapshot, len(s))
	copy(out, s)

	return out
}

// Valid reports whether the snapshot satisfies the single-shop, positive-quantity and non-negative price rules.
func (s CartSnapshot) Valid() bool {
	shopID := s.ShopID()
	seen := make(map[ID]struct{}, len(s))
	for _, line := range s {
		if line.Quantity < 1 || line.ShopID != shopID || line.ItemID.IsZero() || line.UnitPrice.IsNegative() {
			return false
		}
		if _, dup := seen[line.ItemID]; dup {
			return false
		}
		seen[line.ItemID] = struct{}{}
	}

	return true
}

// CartSummary is the read model returned to callers after every cart operation.
type CartSummary struct {
	Items           CartSnapshot    `json:"items"`
	ShopID          ID              `json:"shop_id,omitempty"`
	UniqueItemCount int             `json:"unique_item_count"`
	TotalQuantity   int             `json:"total_quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// Summarize builds a CartSummary from a snapshot.
func Summarize(s CartSnapshot) *CartSummary {
	return &CartSummary{
		Items:           s.Clone(),
		ShopID:          s.ShopID(),
		UniqueItemCount: s.UniqueItemCount(),
		TotalQuantity:   s.TotalQuantity(),
		TotalPrice:      s.TotalPrice(),
	}
}
