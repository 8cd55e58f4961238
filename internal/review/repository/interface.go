package repository

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// UpsertReviews inserts or updates reviews keyed by (platform, external_id). Returns rows written.
	UpsertReviews(ctx context.Context, opt UpsertReviewsOptions) (int, error)
	// ListReviews returns reviews ordered by published_at DESC.
	ListReviews(ctx context.Context, opt ListReviewsOptions) ([]model.Review, error)
	// SaveAnnotations sets the annotation columns of existing reviews.
	SaveAnnotations(ctx context.Context, opt SaveAnnotationsOptions) error
	// ListBusinesses returns distinct (business_id, platform) pairs.
	ListBusinesses(ctx context.Context) ([]model.Business, error)
}
