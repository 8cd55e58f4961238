package aggregation

import (
	"time"

	"analytics-srv/internal/model"
)

// State is a step of one aggregation run.
type State string

const (
	StateIdle                   State = "idle"
	StateLoadingReviews         State = "loading_reviews"
	StateAnnotating             State = "annotating"
	StatePartitioningAndScoring State = "partitioning_and_scoring"
	StateComputingDistribution  State = "computing_distribution"
	StatePersisting             State = "persisting"
	StateDone                   State = "done"
	StateFailed                 State = "failed"
)

// RunInput identifies the business to recompute.
type RunInput struct {
	BusinessID string
	Platform   string
}

// RunOutput describes how a run ended.
type RunOutput struct {
	RunID      string
	BusinessID string
	Platform   string
	State      State

	// Result is set once the run reached Persisting.
	Result model.AnalyticsResult

	ReviewCount        int
	Annotated          int
	AnnotationFailures int
	ChildWriteFailures int
	Published          bool
	Duration           time.Duration
}
