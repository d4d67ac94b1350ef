package storage

import (
	"context"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore stores each key as a redis string. A positive ttl expires idle keys.
func NewRedisStore(client *redis.Client, ttl time.Duration) repository.KeyValueStore {
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisStore) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domainerrors.NewStorageExecuteError(err, "redis get "+key)
	}

	return value, true, nil
}

func (s *redisStore) Write(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return domainerrors.NewStorageExecuteError(err, "redis set "+key)
	}

	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return domainerrors.NewStorageExecuteError(err, "redis del "+key)
	}

	return nil
}

func (s *redisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
