package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// PaymentProof is the uploaded screenshot of a manual payment.
type PaymentProof struct {
	Filename string
	Content  io.Reader
}

// CheckoutUsecase turns the cart into an order.
type CheckoutUsecase interface {
	// Checkout uploads the proof, creates the order and clears the cart.
	// On failure the cart is left untouched.
	Checkout(ctx context.Context, proof *PaymentProof) (*entity.Order, error)
}
