package aggregation

import (
	"errors"
	"fmt"
)

var (
	ErrNoData            = errors.New("aggregation: business has no reviews")
	ErrInvalidBusiness   = errors.New("aggregation: invalid business")
	ErrRunInProgress     = errors.New("aggregation: another run holds the business lock")
	ErrLockFailed        = errors.New("aggregation: failed to acquire business lock")
	ErrLockLost          = errors.New("aggregation: business lock lost before persisting")
	ErrLoadReviewsFailed = errors.New("aggregation: failed to load reviews")
	ErrPersistenceFailed = errors.New("aggregation: failed to persist result")
)

// AnnotationError is logged when one review could not be annotated. The run continues with the neutral default.
type AnnotationError struct {
	ReviewID string
	Err      error
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("aggregation: annotate review %s: %v", e.ReviewID, e.Err)
}

func (e *AnnotationError) Unwrap() error { return e.Err }

// ChildWriteError is logged when the keyword/topic/tag lists of one owner could not be replaced.
type ChildWriteError struct {
	OwnerKind string
	OwnerID   string
	PeriodKey int
	Err       error
}

func (e *ChildWriteError) Error() string {
	return fmt.Sprintf("aggregation: replace children of %s %s (period %d): %v", e.OwnerKind, e.OwnerID, e.PeriodKey, e.Err)
}

func (e *ChildWriteError) Unwrap() error { return e.Err }
