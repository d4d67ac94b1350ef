package entity

import "github.com/shopspring/decimal"

// Shop is a storefront shop as listed by the backend.
type Shop struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// MenuItem is a purchasable item of a shop.
type MenuItem struct {
	ID          ID              `json:"id"`
	ShopID      ID              `json:"shop_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// ToCartLine builds a cart line for the given shop with quantity 1.
func (m MenuItem) ToCartLine(shop Shop) CartLineItem {
	return CartLineItem{
		ItemID:      m.ID,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.Price,
		ShopID:      shop.ID,
		ShopName:    shop.Name,
		ImageURL:    m.ImageURL,
		Quantity:    1,
	}
}

// MenuItemInput is the owner-supplied body for creating or updating a menu item.
type MenuItemInput struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
}

// Profile is the account profile returned by the backend.
type Profile struct {
	ID         ID     `json:"id"`
	UserName   string `json:"user_name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"is_verified"`
}
