package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leadgrid/config"
	"leadgrid/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, service.ReportCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisCache(client)
}

func TestRedisCache_SetGet(t *testing.T) {
	_, cache := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "report:zone:1", []byte(`{"total":3}`), time.Minute))

	got, err := cache.Get(ctx, "report:zone:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":3}`, string(got))
}

func TestRedisCache_MissAndExpiry(t *testing.T) {
	mr, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.Get(ctx, "absent")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "short", []byte("x"), time.Second))
	mr.FastForward(2 * time.Second)

	_, err = cache.Get(ctx, "short")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_Incr(t *testing.T) {
	mr, cache := setupTestRedis(t)
	ctx := context.Background()

	first, err := cache.Incr(ctx, "report:zone:1:gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := cache.Incr(ctx, "report:zone:1:gen")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	got, err := cache.Get(ctx, "report:zone:1:gen")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))

	require.NoError(t, mr.Set("not-a-number", "x"))
	_, err = cache.Incr(ctx, "not-a-number")
	assert.Error(t, err)
}

func TestNoopCache(t *testing.T) {
	cache := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	n, err := cache.Incr(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewReportCache_FallsBackWithoutRedis(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cache := NewReportCache(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, ok := cache.(noopCache)
	assert.True(t, ok)
}

func TestNewReportCache_UsesRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr()}}

	cache := NewReportCache(Params{
		Lc:     lc,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	lc.RequireStart()
	defer lc.RequireStop()

	require.NoError(t, cache.Set(context.Background(), "k", []byte("v"), time.Minute))
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
