package repository

import "analytics-srv/internal/model"

// UpsertReviewsOptions - Options for UpsertReviews
type UpsertReviewsOptions struct {
	Reviews []model.Review
}

// ListReviewsOptions - Options for ListReviews
type ListReviewsOptions struct {
	BusinessID string
	Platform   string

	// Optional safety limit (0 = no limit)
	Limit int
}

// SaveAnnotationsOptions - Options for SaveAnnotations
type SaveAnnotationsOptions struct {
	Annotations []model.ReviewAnnotation
}
