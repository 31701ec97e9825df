package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"moderation-srv/internal/moderation/repository"
	"moderation-srv/pkg/log"
	"moderation-srv/pkg/paginator"
)

// getOrCompute serves an aggregate from the cache, recomputing and re-caching
// it on a miss. When the computation fails the fallback snapshot is returned
// and the second result reports the degradation. Cache failures alone never
// degrade the result; the computed value is served uncached.
func getOrCompute[T any](
	ctx context.Context,
	l log.Logger,
	cache repository.CacheRepository,
	key string,
	ttl time.Duration,
	compute func(context.Context) (T, error),
	fallback func() T,
) (T, bool) {
	if data, err := cache.Get(ctx, key); err == nil {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, false
		}
		l.Warnf(ctx, "moderation.usecase.getOrCompute: Corrupt cache entry %s, recomputing", key)
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		l.Warnf(ctx, "moderation.usecase.getOrCompute: Cache read %s failed: %v", key, err)
	}

	value, err := compute(ctx)
	if err != nil {
		l.Errorf(ctx, "moderation.usecase.getOrCompute: Failed to compute %s: %v", key, err)
		return fallback(), true
	}

	if data, err := json.Marshal(value); err == nil {
		if err := cache.Save(ctx, key, data, ttl); err != nil {
			l.Warnf(ctx, "moderation.usecase.getOrCompute: Cache write %s failed: %v", key, err)
		}
	}

	return value, false
}

// invalidateAggregates drops the cached queue and statistics after any write
// to the flag population.
func (uc *implUseCase) invalidateAggregates(ctx context.Context) {
	if err := uc.cacheRepo.Delete(ctx, cacheKeyQueue, cacheKeyStatsFast, cacheKeyStatsExact); err != nil {
		uc.l.Warnf(ctx, "moderation.usecase.invalidateAggregates: Failed to invalidate: %v", err)
	}
}

func paginatorOf(total, count int64, q paginator.PaginateQuery) paginator.Paginator {
	return paginator.Paginator{
		Total:       total,
		Count:       count,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}
