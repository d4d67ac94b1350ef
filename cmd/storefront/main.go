package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/worker"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notification"
	"storefront/internal/infra/push"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/syncbus"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			storage.NewKeyValueStore,
			storage.NewSessionStores,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			syncbus.NewRegistry,
			newCartEventsRegistry,
			auth.NewTokenDecoder,
			api.NewClient,
			push.NewPushTransport,
			newToastBoard,
			newToastFeed,
			newNotifier,
			newQRCodeService,
		),
	)
}

// newCartEventsRegistry exposes the registry to the page factory
func newCartEventsRegistry(registry *syncbus.Registry) service.CartEventsRegistry {
	return registry
}

func newToastBoard(cfg *config.Config) *notification.ToastBoard {
	return notification.NewToastBoard(cfg.Notification.ToastTTL)
}

func newToastFeed(board *notification.ToastBoard) service.ToastFeed {
	return board
}

// newNotifier surfaces toasts on the board and mirrors them to FCM when Firebase is configured
func newNotifier(ctx context.Context, cfg *config.Config, board *notification.ToastBoard, logger *slog.Logger) (service.Notifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return notification.NewFanout(logger, board), nil
	}

	firebase, err := notification.NewFirebaseNotifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath, cfg.Firebase.TopicPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase notifier")
	}
	logger.Info("Mirroring notifications to Firebase", slog.String("project_id", cfg.Firebase.ProjectID))

	return notification.NewFanout(logger, board, firebase), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.Payee)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewPageFactory,
			impl.NewNotificationListener,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewShopHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewOwnerHandler,
			handler.NewNotificationHandler,
			handler.NewEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
