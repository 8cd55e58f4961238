package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "analytics-srv/internal/aggregation/repository"
)

const lockKeyPrefix = "analytics:lock:business:"

// releaseScript deletes the key only when it still holds our token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// refreshScript resets the TTL only when the key still holds our token.
const refreshScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`

// Acquire takes the lock of one business and platform with SET NX and a TTL.
func (r *implLockRepository) Acquire(ctx context.Context, businessID, platform string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	ok, err := r.redis.SetNX(ctx, lockKey(businessID, platform), token, ttl)
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.redis.Acquire: Failed to set lock for business %s/%s: %v", businessID, platform, err)
		return "", fmt.Errorf("%w: %w", repo.ErrFailedToAcquireLock, err)
	}
	if !ok {
		return "", repo.ErrLockHeld
	}

	return token, nil
}

// Refresh extends the lock TTL. It returns ErrLockLost when the token no longer owns the key.
func (r *implLockRepository) Refresh(ctx context.Context, businessID, platform, token string, ttl time.Duration) error {
	res, err := r.redis.Eval(ctx, refreshScript, []string{lockKey(businessID, platform)}, token, ttl.Milliseconds())
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.redis.Refresh: Failed to refresh lock for business %s/%s: %v", businessID, platform, err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToRefreshLock, err)
	}
	if n, ok := res.(int64); !ok || n == 0 {
		r.l.Warnf(ctx, "aggregation.repository.redis.Refresh: Lock for business %s/%s is no longer held by this run", businessID, platform)
		return repo.ErrLockLost
	}
	return nil
}

// Release drops the lock if this token still owns it. An expired or stolen lock is not an error.
func (r *implLockRepository) Release(ctx context.Context, businessID, platform, token string) error {
	res, err := r.redis.Eval(ctx, releaseScript, []string{lockKey(businessID, platform)}, token)
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.redis.Release: Failed to release lock for business %s/%s: %v", businessID, platform, err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToReleaseLock, err)
	}
	if n, ok := res.(int64); ok && n == 0 {
		r.l.Warnf(ctx, "aggregation.repository.redis.Release: Lock for business %s/%s was no longer held by this run", businessID, platform)
	}
	return nil
}

func lockKey(businessID, platform string) string {
	return lockKeyPrefix + businessID + ":" + platform
}
