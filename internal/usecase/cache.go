package usecase

import (
	"context"
	"log/slog"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

const (
	cacheLockTTL  = 30 * time.Second
	cacheLockWait = 300 * time.Millisecond
)

// loadThroughCache serves key from c when present. On a miss one caller takes
// a short lock and loads; the others wait briefly for its result before
// loading themselves. Load errors are never cached.
func loadThroughCache[T any](ctx context.Context, c Cache, logger *slog.Logger, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	var cached T
	if hit, err := c.GetJSON(ctx, key, &cached); err == nil && hit {
		logger.Debug("cache hit", "key", key)
		return cached, nil
	}
	logger.Debug("cache miss", "key", key)

	lockKey := cacheLockKey(key)
	lockAcquired := false
	ok, err := c.SetIfNotExists(ctx, lockKey, "1", cacheLockTTL)
	switch {
	case err == nil && ok:
		lockAcquired = true
	case err == nil && !ok:
		jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
		t := time.NewTimer(cacheLockWait + jitter)
		select {
		case <-ctx.Done():
			t.Stop()
			var zero T
			return zero, ctx.Err()
		case <-t.C:
		}
		var waited T
		if hit, err := c.GetJSON(ctx, key, &waited); err == nil && hit {
			logger.Debug("cache hit after wait", "key", key)
			return waited, nil
		}
		logger.Debug("cache lock wait fallback", "key", lockKey)
	}
	if lockAcquired {
		defer func() { _ = c.Delete(context.WithoutCancel(ctx), lockKey) }()
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if err := c.SetJSON(ctx, key, v, 0); err != nil {
		logger.Warn("cache set failed", "key", key, "error", err)
	}
	return v, nil
}
