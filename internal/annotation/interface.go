package annotation

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Annotate(ctx context.Context, text string, rating *float64) (model.Annotation, error)
}

// Classifier scores free text sentiment on [-1, 1]. It must be ready when passed to New.
type Classifier interface {
	Score(text string) (float64, error)
}
