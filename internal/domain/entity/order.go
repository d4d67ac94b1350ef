package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPreparing OrderStatus = "preparing"
	OrderAccepted  OrderStatus = "accepted"
	OrderRejected  OrderStatus = "rejected"
	OrderDelivered OrderStatus = "delivered"
	OrderDiscarded OrderStatus = "discarded"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPreparing, OrderAccepted, OrderRejected, OrderDelivered, OrderDiscarded:
		return true
	default:
		return false
	}
}

// PaymentStatus is the verification state of a manual payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentVerified, PaymentRejected:
		return true
	default:
		return false
	}
}

// Order is an order as listed by the backend.
type Order struct {
	OrderID    ID              `json:"order_id"`
	UserID     ID              `json:"user_id,omitempty"`
	ShopID     ID              `json:"shop_id"`
	Status     OrderStatus     `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []OrderItem     `json:"items,omitempty"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ID       ID              `json:"id"`
	ItemID   ID              `json:"item_id,omitempty"`
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CheckoutLine is one cart line as submitted at checkout.
type CheckoutLine struct {
	ItemID   ID              `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CheckoutRequest is submitted to create an order after uploading the payment proof.
type CheckoutRequest struct {
	UserID          ID              `json:"user_id"`
	ShopID          ID              `json:"shop_id"`
	Items           []CheckoutLine  `json:"items"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	PaymentProofURL string          `json:"payment_proof_url"`
}

// NewCheckoutRequest builds a request from the cart snapshot.
func NewCheckoutRequest(userID ID, cart CartSnapshot, proofURL string) *CheckoutRequest {
	lines := make([]CheckoutLine, 0, len(cart))
	for _, line := range cart {
		lines = append(lines, CheckoutLine{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
		})
	}

	return &CheckoutRequest{
		UserID:          userID,
		ShopID:          cart.ShopID(),
		Items:           lines,
		TotalPrice:      cart.TotalPrice(),
		PaymentProofURL: proofURL,
	}
}
