package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"analytics-srv/internal/model"
	repo "analytics-srv/internal/review/repository"
)

// UpsertReviews - Upsert reviews keyed by (platform, external_id) in one transaction
func (r *implRepository) UpsertReviews(ctx context.Context, opt repo.UpsertReviewsOptions) (int, error) {
	if len(opt.Reviews) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.UpsertReviews: Failed to begin transaction: %v", err)
		return 0, fmt.Errorf("%w: %w", repo.ErrFailedToUpsert, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertReviewQuery)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.UpsertReviews: Failed to prepare statement: %v", err)
		return 0, fmt.Errorf("%w: %w", repo.ErrFailedToUpsert, err)
	}
	defer stmt.Close()

	written := 0
	for _, rv := range opt.Reviews {
		if rv.BusinessID == "" || rv.Platform == "" || rv.ExternalID == "" {
			return 0, repo.ErrInvalidInput
		}
		if _, err := stmt.ExecContext(ctx, buildUpsertArgs(rv)...); err != nil {
			r.l.Errorf(ctx, "review.repository.postgre.UpsertReviews: Failed to upsert review %s/%s: %v", rv.Platform, rv.ExternalID, err)
			return 0, fmt.Errorf("%w: %w", repo.ErrFailedToUpsert, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.UpsertReviews: Failed to commit: %v", err)
		return 0, fmt.Errorf("%w: %w", repo.ErrFailedToCommit, err)
	}

	return written, nil
}

// ListReviews - List reviews of one business, newest first
func (r *implRepository) ListReviews(ctx context.Context, opt repo.ListReviewsOptions) ([]model.Review, error) {
	if opt.BusinessID == "" || opt.Platform == "" {
		return nil, repo.ErrInvalidInput
	}

	query, args := r.buildListReviewsQuery(opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.ListReviews: Failed to query reviews: %v", err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			r.l.Errorf(ctx, "review.repository.postgre.ListReviews: Failed to scan review: %v", err)
			return nil, fmt.Errorf("%w: %w", repo.ErrFailedToDecode, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.ListReviews: Row iteration failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}

	return reviews, nil
}

// SaveAnnotations - Set annotation columns of existing reviews in one transaction
func (r *implRepository) SaveAnnotations(ctx context.Context, opt repo.SaveAnnotationsOptions) error {
	if len(opt.Annotations) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.SaveAnnotations: Failed to begin transaction: %v", err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToUpdate, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, saveAnnotationQuery)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.SaveAnnotations: Failed to prepare statement: %v", err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToUpdate, err)
	}
	defer stmt.Close()

	for _, a := range opt.Annotations {
		if _, err := stmt.ExecContext(ctx, buildAnnotationArgs(a)...); err != nil {
			r.l.Errorf(ctx, "review.repository.postgre.SaveAnnotations: Failed to update review %s: %v", a.ReviewID, err)
			return fmt.Errorf("%w: %w", repo.ErrFailedToUpdate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.SaveAnnotations: Failed to commit: %v", err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToCommit, err)
	}

	return nil
}

// ListBusinesses - Distinct (business_id, platform) pairs with review stats
func (r *implRepository) ListBusinesses(ctx context.Context) ([]model.Business, error) {
	rows, err := r.db.QueryContext(ctx, listBusinessesQuery)
	if err != nil {
		r.l.Errorf(ctx, "review.repository.postgre.ListBusinesses: Failed to query businesses: %v", err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	businesses := make([]model.Business, 0)
	for rows.Next() {
		var (
			b    model.Business
			last sql.NullTime
		)
		if err := rows.Scan(&b.ID, &b.Platform, &b.ReviewCount, &last); err != nil {
			r.l.Errorf(ctx, "review.repository.postgre.ListBusinesses: Failed to scan business: %v", err)
			return nil, fmt.Errorf("%w: %w", repo.ErrFailedToDecode, err)
		}
		if last.Valid {
			t := last.Time
			b.LastReviewAt = &t
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}

	return businesses, nil
}
