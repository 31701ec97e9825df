package redis

import (
	"moderation-srv/internal/moderation/repository"
	"moderation-srv/pkg/log"
	pkgRedis "moderation-srv/pkg/redis"
)

type implCacheRepository struct {
	l     log.Logger
	redis pkgRedis.IRedis
}

// NewCacheRepository - Factory
func NewCacheRepository(l log.Logger, redis pkgRedis.IRedis) repository.CacheRepository {
	return &implCacheRepository{l: l, redis: redis}
}
