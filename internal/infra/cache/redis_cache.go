// Package cache provides ReportCache implementations backed by Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"leadgrid/config"
	"leadgrid/internal/domain/lifecycle"
	"leadgrid/internal/domain/service"
	"leadgrid/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// redisCache implements service.ReportCache on go-redis.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client) service.ReportCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrapf(err, "failed to get cache key %s", key)
	}

	return val, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set cache key %s", key)
	}

	return nil
}

func (c *redisCache) Incr(ctx context.Context, key string) (int64, error) {
	val, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment cache key %s", key)
	}

	return val, nil
}

// noopCache always misses. Used when Redis is not configured.
type noopCache struct{}

// NewNoopCache returns a ReportCache that stores nothing.
func NewNoopCache() service.ReportCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, error) {
	return nil, service.ErrCacheMiss
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopCache) Incr(context.Context, string) (int64, error) {
	return 0, nil
}

// Params holds dependencies for the report cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewReportCache returns a Redis backed cache when redis.addr is set and a no-op cache otherwise.
func NewReportCache(params Params) service.ReportCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, report cache disabled")

		return NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional: an unreachable Redis degrades to misses.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, reports will be computed on every request",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Report cache backed by Redis", slog.String("addr", cfg.Addr))

	return NewRedisCache(client)
}
