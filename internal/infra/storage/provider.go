package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KeyValueStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore creates the KeyValueStore selected by storage.provider
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	provider := constants.StorageProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var store repository.KeyValueStore
	var err error

	switch provider {
	case constants.StorageProviderMemory:
		logger.Warn("Using in-memory storage, carts will not survive a restart")

		store = NewMemoryStore()

	case constants.StorageProviderBlob:
		if cfg.Blob.URL == "" {
			return nil, errors.New("blob url is required for blob provider")
		}
		logger.Info("Using blob storage", slog.String("url", cfg.Blob.URL))

		store, err = OpenBlobStore(params.Ctx, cfg.Blob.URL)
		if err != nil {
			return nil, err
		}

	case constants.StorageProviderSQLite:
		if cfg.SQLite.Path == "" {
			return nil, errors.New("sqlite path is required for sqlite provider")
		}
		logger.Info("Using SQLite storage", slog.String("path", cfg.SQLite.Path))

		store, err = NewSQLiteStore(params.Ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}

	case constants.StorageProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis provider")
		}
		logger.Info("Using Redis storage", slog.String("addr", cfg.Redis.Addr))

		store = NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.TTL)

	case constants.StorageProviderPostgres:
		logger.Info("Using PostgreSQL storage")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		store, err = postgres.NewKVRepository(params.Ctx, db)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown storage provider: %s", provider)
	}

	// Register lifecycle hook to close the store on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing KeyValueStore")

			return store.Close()
		},
	})

	return store, nil
}
