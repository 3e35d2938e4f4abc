// Package cache provides the Redis-backed implementation of the
// read-through cache used by catalog and settings lookups.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client with fx lifecycle management.
func NewClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis config is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected",
				slog.String("addr", client.Options().Addr),
				slog.Int("db", cfg.DB),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// redisCacheStore implements the service.CacheStore interface.
type redisCacheStore struct {
	client *redis.Client
}

// NewCacheStore is the constructor for redisCacheStore.
// This function will be used as an Fx provider.
func NewCacheStore(client *redis.Client) service.CacheStore {
	return &redisCacheStore{client: client}
}

// GetJSON loads the value stored under key into dest.
// A missing key is a miss, not an error.
func (s *redisCacheStore) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to get cache entry")
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, errors.Wrap(err, "failed to unmarshal cache entry")
	}

	return true, nil
}

// SetJSON stores value under key with the given TTL.
func (s *redisCacheStore) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache entry")
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache entry")
	}

	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *redisCacheStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache entry")
	}

	return nil
}
