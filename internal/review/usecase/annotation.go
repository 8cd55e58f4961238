package usecase

import (
	"context"
	"fmt"

	"analytics-srv/internal/model"
	"analytics-srv/internal/review"
	repo "analytics-srv/internal/review/repository"
)

// SaveAnnotations - Write computed annotations back onto their reviews
func (uc *implUseCase) SaveAnnotations(ctx context.Context, annotations []model.ReviewAnnotation) error {
	if len(annotations) == 0 {
		return nil
	}

	valid := make([]model.ReviewAnnotation, 0, len(annotations))
	for _, a := range annotations {
		if a.ReviewID == "" {
			continue
		}
		valid = append(valid, a)
	}

	if err := uc.repo.SaveAnnotations(ctx, repo.SaveAnnotationsOptions{Annotations: valid}); err != nil {
		uc.l.Errorf(ctx, "review.usecase.SaveAnnotations: Failed to save %d annotations: %v", len(valid), err)
		return fmt.Errorf("%w: %w", review.ErrStoreFailed, err)
	}

	return nil
}
