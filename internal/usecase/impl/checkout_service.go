package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart    usecase.CartUsecase
	session usecase.SessionUsecase
	api     service.StorefrontAPI
	logger  *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	api service.StorefrontAPI,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:    cart,
		session: session,
		api:     api,
		logger:  logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout uploads the payment proof, creates the order and clears the cart.
func (srv *checkoutService) Checkout(ctx context.Context, proof *usecase.PaymentProof) (*entity.Order, error) {
	token, identity, err := srv.session.BearerToken(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.Role.IsCustomer() {
		return nil, domainerrors.ErrForbidden.WithDetails("only customers can check out")
	}

	items := srv.cart.Items()
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if proof == nil || proof.Content == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment proof is required")
	}

	logger := srv.log(ctx).With(
		slog.String("shop_id", items.ShopID().String()),
		slog.String("user_id", identity.SubjectID.String()),
	)

	proofURL, err := srv.api.UploadImage(ctx, proof.Filename, proof.Content)
	if err != nil {
		logger.Warn("Payment proof upload failed", slog.Any("error", err))

		return nil, srv.session.HandleBackendRejection(ctx, err)
	}

	req := entity.NewCheckoutRequest(identity.SubjectID, items, proofURL)
	order, err := srv.api.VerifyPaymentAndCreateOrder(ctx, token, req)
	if err != nil {
		logger.Warn("Order creation failed", slog.Any("error", err))

		return nil, srv.session.HandleBackendRejection(ctx, err)
	}

	// the order exists now; a failed clear only leaves a stale cart behind
	if err := srv.cart.Clear(ctx); err != nil {
		logger.Error("Failed to clear cart after checkout", slog.Any("error", err))
	}

	logger.Info("Order placed",
		slog.String("order_id", order.OrderID.String()),
		slog.String("total_price", req.TotalPrice.String()),
	)

	return order, nil
}
