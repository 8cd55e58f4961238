package redis

import (
	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/redis"
)

type implLockRepository struct {
	redis redis.IRedis
	l     log.Logger
}

// New creates a new LockRepository backed by Redis.
func New(redis redis.IRedis, l log.Logger) repo.LockRepository {
	return &implLockRepository{
		redis: redis,
		l:     l,
	}
}
