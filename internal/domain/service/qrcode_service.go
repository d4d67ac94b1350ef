package service

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PaymentQRData is the payload encoded in a payment QR code
type PaymentQRData struct {
	ShopID entity.ID       `json:"shop_id"`
	Amount decimal.Decimal `json:"amount"`
	Payee  string          `json:"payee,omitempty"`
	Type   string          `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code asking for amount to be paid to the shop
	GeneratePaymentQR(shopID entity.ID, amount decimal.Decimal) ([]byte, error)

	// ParsePaymentQR parses QR code data back into its payload
	ParsePaymentQR(qrData string) (*PaymentQRData, error)
}
