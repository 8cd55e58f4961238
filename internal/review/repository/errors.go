package repository

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrFailedToUpsert = errors.New("failed to upsert")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToUpdate = errors.New("failed to update")
	ErrFailedToDecode = errors.New("failed to decode row")
	ErrFailedToCommit = errors.New("failed to commit transaction")
)
