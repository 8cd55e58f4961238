package usecase

import (
	"context"
	"fmt"
	"strings"

	"analytics-srv/internal/model"
	"analytics-srv/internal/platform"
	"analytics-srv/internal/review"
	repo "analytics-srv/internal/review/repository"
)

// List - All stored reviews of one business on one platform
func (uc *implUseCase) List(ctx context.Context, businessID, platformName string) ([]model.Review, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, review.ErrInvalidInput
	}
	p, err := platform.Lookup(platformName)
	if err != nil {
		return nil, review.ErrUnknownPlatform
	}

	reviews, err := uc.repo.ListReviews(ctx, repo.ListReviewsOptions{
		BusinessID: businessID,
		Platform:   p.Name(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "review.usecase.List: Failed to list reviews for %s/%s: %v", businessID, p.Name(), err)
		return nil, fmt.Errorf("%w: %w", review.ErrListFailed, err)
	}

	return reviews, nil
}

// ListBusinesses - Every (business, platform) pair with stored reviews
func (uc *implUseCase) ListBusinesses(ctx context.Context) ([]model.Business, error) {
	businesses, err := uc.repo.ListBusinesses(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "review.usecase.ListBusinesses: Failed to list businesses: %v", err)
		return nil, fmt.Errorf("%w: %w", review.ErrListFailed, err)
	}
	return businesses, nil
}
