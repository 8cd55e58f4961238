package review

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Ingest loads a JSONL review batch from object storage and upserts it.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
	// List returns the reviews of one business, newest first.
	List(ctx context.Context, businessID, platform string) ([]model.Review, error)
	// SaveAnnotations stores freshly computed annotations.
	SaveAnnotations(ctx context.Context, annotations []model.ReviewAnnotation) error
	// ListBusinesses returns every (business, platform) pair with reviews.
	ListBusinesses(ctx context.Context) ([]model.Business, error)
}
