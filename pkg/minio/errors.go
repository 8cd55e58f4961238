package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	ErrEndpointRequired  = errors.New("minio: endpoint is required")
	ErrAccessKeyRequired = errors.New("minio: access key is required")
	ErrSecretKeyRequired = errors.New("minio: secret key is required")
	ErrBucketRequired    = errors.New("minio: bucket name is required")
	ErrObjectRequired    = errors.New("minio: object name is required")
	ErrNotConnected      = errors.New("minio: not connected")
	ErrBucketNotFound    = errors.New("minio: bucket not found")
	ErrObjectNotFound    = errors.New("minio: object not found")
	ErrAccessDenied      = errors.New("minio: access denied")
	ErrInvalidURL        = errors.New("minio: invalid object URL")
)

// StorageError wraps a MinIO failure with the operation that produced it.
type StorageError struct {
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("minio %s: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return &StorageError{Operation: operation, Err: ErrBucketNotFound}
	case "NoSuchKey":
		return &StorageError{Operation: operation, Err: ErrObjectNotFound}
	case "AccessDenied":
		return &StorageError{Operation: operation, Err: ErrAccessDenied}
	}
	return &StorageError{Operation: operation, Err: err}
}
