package qrcode

import (
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const paymentQRType = "payment"

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
	payee string
}

// NewQRCodeService creates the payment QR renderer. Unknown correction levels fall back to M.
// payee is embedded in every payment code.
func NewQRCodeService(size int, errorCorrectionLevel, payee string) service.QRCodeService {
	level, ok := recoveryLevels[errorCorrectionLevel]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:  size,
		level: level,
		payee: payee,
	}
}

// GeneratePaymentQR renders a PNG asking for amount to be paid to the shop
func (s *qrcodeService) GeneratePaymentQR(shopID entity.ID, amount decimal.Decimal) ([]byte, error) {
	if err := validatePayment(shopID, amount); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(service.PaymentQRData{
		ShopID: shopID,
		Amount: amount,
		Payee:  s.payee,
		Type:   paymentQRType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal payment QR payload")
	}

	png, err := qrcode.Encode(string(payload), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment QR")
	}

	return png, nil
}

// ParsePaymentQR decodes a scanned payload back into its payment data
func (s *qrcodeService) ParsePaymentQR(qrData string) (*service.PaymentQRData, error) {
	var data service.PaymentQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment QR is not JSON")
	}

	if data.Type != paymentQRType {
		return nil, domainerrors.ErrValidationFailed.WithDetails("not a payment QR: " + data.Type)
	}
	if err := validatePayment(data.ShopID, data.Amount); err != nil {
		return nil, err
	}

	return &data, nil
}

func validatePayment(shopID entity.ID, amount decimal.Decimal) error {
	if shopID.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("payment QR needs a shop id")
	}
	if !amount.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("payment amount must be positive, got " + amount.String())
	}

	return nil
}
