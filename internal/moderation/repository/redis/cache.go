package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"moderation-srv/internal/moderation/repository"
)

// Get - Read a cached payload. Misses map to repository.ErrCacheMiss.
func (r *implCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redis.Get(ctx, key)
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.redis.Get: Failed to get key %s: %v", key, err)
		return nil, err
	}
	return []byte(val), nil
}

// Save - Store a payload under the key for the given TTL.
func (r *implCacheRepository) Save(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := r.redis.Set(ctx, key, data, ttl); err != nil {
		r.l.Errorf(ctx, "moderation.repository.redis.Save: Failed to set key %s: %v", key, err)
		return repository.ErrCacheSetFailed
	}
	return nil
}

// Delete - Drop cached payloads so the next read recomputes them.
func (r *implCacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.redis.Delete(ctx, keys...); err != nil {
		r.l.Errorf(ctx, "moderation.repository.redis.Delete: Failed to delete keys %v: %v", keys, err)
		return repository.ErrCacheDeleteFailed
	}
	return nil
}
