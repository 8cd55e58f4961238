package repository

import (
	"context"
	"time"
)

//go:generate mockery --name Repository
type Repository interface {
	// UpsertAggregates writes the overview, the distribution and every period row in one transaction.
	UpsertAggregates(ctx context.Context, opt UpsertAggregatesOptions) (AggregateIDs, error)
	// ReplaceChildren deletes every keyword/topic/tag row of one owner and inserts the new set, in one transaction.
	ReplaceChildren(ctx context.Context, opt ReplaceChildrenOptions) error
}

// LockRepository guards the single-writer discipline per business and platform.
type LockRepository interface {
	// Acquire returns a release token, or ErrLockHeld when another run owns the business.
	Acquire(ctx context.Context, businessID, platform string, ttl time.Duration) (string, error)
	// Refresh resets the TTL, or returns ErrLockLost when the token no longer owns the lock.
	Refresh(ctx context.Context, businessID, platform, token string, ttl time.Duration) error
	Release(ctx context.Context, businessID, platform, token string) error
}
