package aggregation

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}

// ReviewSource supplies the reviews of one business, newest first and deduplicated.
type ReviewSource interface {
	List(ctx context.Context, businessID, platform string) ([]model.Review, error)
	SaveAnnotations(ctx context.Context, annotations []model.ReviewAnnotation) error
}

// Producer announces a freshly persisted result.
type Producer interface {
	PublishResultUpdated(ctx context.Context, result model.AnalyticsResult) error
}
