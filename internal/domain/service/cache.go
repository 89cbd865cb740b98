package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned by ReportCache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// ReportCache stores serialized reports. It is never the source of truth.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr atomically increments the integer stored at key, starting from 0, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}
