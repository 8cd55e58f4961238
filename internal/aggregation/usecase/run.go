package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"analytics-srv/internal/aggregation"
	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/internal/model"
	"analytics-srv/internal/platform"
)

// Run recomputes and persists the analytics of one business.
func (uc *implUseCase) Run(ctx context.Context, ip aggregation.RunInput) (out aggregation.RunOutput, err error) {
	startTime := time.Now()
	out = aggregation.RunOutput{
		RunID:      uuid.NewString(),
		BusinessID: ip.BusinessID,
		Platform:   ip.Platform,
		State:      aggregation.StateIdle,
	}
	defer func() { out.Duration = time.Since(startTime) }()

	if strings.TrimSpace(ip.BusinessID) == "" {
		out.State = aggregation.StateFailed
		return out, aggregation.ErrInvalidBusiness
	}
	p, err := platform.Lookup(ip.Platform)
	if err != nil {
		uc.l.Errorf(ctx, "aggregation.usecase.Run: Unknown platform %q for business %s", ip.Platform, ip.BusinessID)
		out.State = aggregation.StateFailed
		return out, fmt.Errorf("%w: %w", aggregation.ErrInvalidBusiness, err)
	}

	token, err := uc.locker.Acquire(ctx, ip.BusinessID, p.Name(), uc.lockTTL)
	if err != nil {
		out.State = aggregation.StateFailed
		if errors.Is(err, repo.ErrLockHeld) {
			return out, aggregation.ErrRunInProgress
		}
		uc.l.Errorf(ctx, "aggregation.usecase.Run: Failed to acquire lock for business %s: %v", ip.BusinessID, err)
		return out, fmt.Errorf("%w: %w", aggregation.ErrLockFailed, err)
	}
	defer func() {
		if err := uc.locker.Release(context.WithoutCancel(ctx), ip.BusinessID, p.Name(), token); err != nil {
			uc.l.Warnf(ctx, "aggregation.usecase.Run: Failed to release lock for business %s: %v", ip.BusinessID, err)
		}
	}()

	// One instant for every window of this run
	now := uc.now()

	// Step 1: Load reviews
	out.State = aggregation.StateLoadingReviews
	reviews, err := uc.reviews.List(ctx, ip.BusinessID, p.Name())
	if err != nil {
		uc.l.Errorf(ctx, "aggregation.usecase.Run: Failed to load reviews for business %s: %v", ip.BusinessID, err)
		out.State = aggregation.StateFailed
		return out, fmt.Errorf("%w: %w", aggregation.ErrLoadReviewsFailed, err)
	}
	if len(reviews) == 0 {
		uc.l.Infof(ctx, "aggregation.usecase.Run: No reviews for business %s, nothing to compute", ip.BusinessID)
		out.State = aggregation.StateFailed
		return out, aggregation.ErrNoData
	}
	out.ReviewCount = len(reviews)

	// Step 2: Annotate reviews without annotation
	out.State = aggregation.StateAnnotating
	annotated, fresh, failures := uc.annotateReviews(ctx, reviews, p)
	out.Annotated = len(fresh)
	out.AnnotationFailures = failures

	// Step 3: Per-window metrics and scores, sequentially
	out.State = aggregation.StatePartitioningAndScoring
	periods := computePeriods(annotated, p, now)

	// Step 4: Distribution over the full set
	out.State = aggregation.StateComputingDistribution
	distribution := computeDistribution(annotated, p, now)

	result := model.AnalyticsResult{
		RunID:        out.RunID,
		BusinessID:   ip.BusinessID,
		Platform:     p.Name(),
		ComputedAt:   now,
		Overview:     buildOverview(ip.BusinessID, p, annotated, periods, now),
		Periods:      periods,
		Distribution: distribution,
		Annotations:  fresh,
	}
	out.Result = result

	// Step 5: Persist, only while this run still owns the lock
	out.State = aggregation.StatePersisting
	if err := uc.locker.Refresh(ctx, ip.BusinessID, p.Name(), token, uc.lockTTL); err != nil {
		uc.l.Errorf(ctx, "aggregation.usecase.Run: Lock check before persist failed for business %s: %v", ip.BusinessID, err)
		out.State = aggregation.StateFailed
		if errors.Is(err, repo.ErrLockLost) {
			return out, aggregation.ErrLockLost
		}
		return out, fmt.Errorf("%w: %w", aggregation.ErrLockFailed, err)
	}
	stats, err := uc.persist(ctx, result)
	if err != nil {
		out.State = aggregation.StateFailed
		return out, err
	}
	out.ChildWriteFailures = stats.childWriteFailures
	out.Published = stats.published

	out.State = aggregation.StateDone
	uc.l.Infof(ctx, "aggregation.usecase.Run: Business %s done: run=%s reviews=%d annotated=%d child_failures=%d",
		ip.BusinessID, out.RunID, out.ReviewCount, out.Annotated, out.ChildWriteFailures)

	return out, nil
}

// annotateReviews returns a copy of reviews where every review carries an annotation.
// Existing annotations are kept. fresh lists the successful new ones for write-back.
func (uc *implUseCase) annotateReviews(ctx context.Context, reviews []model.Review, p platform.Platform) (annotated []model.Review, fresh []model.ReviewAnnotation, failures int) {
	annotated = make([]model.Review, len(reviews))
	copy(annotated, reviews)

	for i := range annotated {
		r := &annotated[i]
		if r.Annotation != nil {
			continue
		}

		var rating *float64
		if v, ok := p.Rating(*r); ok {
			rating = &v
		}

		a, err := uc.annotator.Annotate(ctx, r.Text, rating)
		if err != nil {
			failures++
			uc.l.Warnf(ctx, "aggregation.usecase.annotateReviews: %v", &aggregation.AnnotationError{ReviewID: r.ID, Err: err})
			neutral := model.NeutralAnnotation()
			r.Annotation = &neutral
			continue
		}

		r.Annotation = &a
		fresh = append(fresh, model.ReviewAnnotation{ReviewID: r.ID, Annotation: a})
	}

	return annotated, fresh, failures
}

// computePeriods runs the metric calculator and score normalizer once per window.
func computePeriods(reviews []model.Review, p platform.Platform, now time.Time) []model.PeriodMetrics {
	partitions := partition(reviews, model.PeriodDefinitions, now)

	periods := make([]model.PeriodMetrics, 0, len(model.PeriodDefinitions))
	for _, def := range model.PeriodDefinitions {
		m := computeMetrics(partitions[def.Key], p)
		m.PeriodKey = def.Key
		m.Label = def.Label
		if !def.IsAllTime() {
			start, end := windowBounds(def, now)
			m.WindowStart = &start
			m.WindowEnd = &end
		}

		s := normalize(m)
		m.EngagementScore = s.Engagement
		m.ViralityScore = s.Virality
		m.QualityScore = s.Quality

		periods = append(periods, m)
	}
	return periods
}
