package repository

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrFailedToBegin       = errors.New("failed to begin transaction")
	ErrFailedToUpsert      = errors.New("failed to upsert")
	ErrFailedToReplace     = errors.New("failed to replace children")
	ErrFailedToCommit      = errors.New("failed to commit transaction")
	ErrLockHeld            = errors.New("lock held by another owner")
	ErrLockLost            = errors.New("lock no longer owned")
	ErrFailedToAcquireLock = errors.New("failed to acquire lock")
	ErrFailedToRefreshLock = errors.New("failed to refresh lock")
	ErrFailedToReleaseLock = errors.New("failed to release lock")
)
