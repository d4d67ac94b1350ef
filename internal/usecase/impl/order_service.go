package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	session usecase.SessionUsecase
	api     service.StorefrontAPI
	logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(session usecase.SessionUsecase, api service.StorefrontAPI, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		session: session,
		api:     api,
		logger:  logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUserOrders returns the orders of the customer session.
func (srv *orderService) ListUserOrders(ctx context.Context) ([]*entity.Order, error) {
	token, identity, err := srv.session.BearerToken(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := srv.api.ListUserOrders(ctx, token, identity.SubjectID)
	if err != nil {
		return srv.degradeOrders(ctx, err)
	}

	return orders, nil
}

// ListShopOrders returns the incoming orders of the owner session.
func (srv *orderService) ListShopOrders(ctx context.Context) ([]*entity.Order, error) {
	token, err := srv.ownerToken(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := srv.api.ListShopOrders(ctx, token)
	if err != nil {
		return srv.degradeOrders(ctx, err)
	}

	return orders, nil
}

// OrderDetails returns the lines of an order.
func (srv *orderService) OrderDetails(ctx context.Context, orderID entity.ID) ([]*entity.OrderItem, error) {
	if orderID.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}
	token, _, err := srv.session.BearerToken(ctx)
	if err != nil {
		return nil, err
	}

	items, err := srv.api.GetOrderDetails(ctx, token, orderID)
	if err != nil {
		return nil, srv.session.HandleBackendRejection(ctx, err)
	}

	return items, nil
}

// UpdateOrderStatus moves an order to status.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID entity.ID, status entity.OrderStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidStatus.WithDetails(string(status))
	}
	token, err := srv.ownerToken(ctx)
	if err != nil {
		return err
	}

	if err := srv.api.UpdateOrderStatus(ctx, token, orderID, status); err != nil {
		return srv.session.HandleBackendRejection(ctx, err)
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("status", string(status)),
	)

	return nil
}

// UpdatePaymentStatus resolves the payment of an order and updates it.
func (srv *orderService) UpdatePaymentStatus(ctx context.Context, orderID entity.ID, status entity.PaymentStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidStatus.WithDetails(string(status))
	}
	token, err := srv.ownerToken(ctx)
	if err != nil {
		return err
	}

	paymentID, err := srv.api.GetPaymentID(ctx, token, orderID)
	if err != nil {
		return srv.session.HandleBackendRejection(ctx, err)
	}

	if err := srv.api.UpdatePaymentStatus(ctx, token, paymentID, status); err != nil {
		return srv.session.HandleBackendRejection(ctx, err)
	}

	srv.log(ctx).Info("Payment status updated",
		slog.String("order_id", orderID.String()),
		slog.String("payment_id", paymentID.String()),
		slog.String("status", string(status)),
	)

	return nil
}

func (srv *orderService) ownerToken(ctx context.Context) (string, error) {
	token, identity, err := srv.session.BearerToken(ctx)
	if err != nil {
		return "", err
	}
	if !identity.Role.IsOwner() {
		return "", domainerrors.ErrForbidden.WithDetails("shop owner role required")
	}

	return token, nil
}

// degradeOrders turns a read failure into an empty list, except for a rejected token.
func (srv *orderService) degradeOrders(ctx context.Context, err error) ([]*entity.Order, error) {
	if err = srv.session.HandleBackendRejection(ctx, err); errors.Is(err, domainerrors.ErrUnauthenticated) {
		return nil, err
	}

	srv.log(ctx).Warn("Order list unavailable", slog.Any("error", err))

	return []*entity.Order{}, nil
}
