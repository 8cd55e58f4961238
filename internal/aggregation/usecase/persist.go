package usecase

import (
	"context"
	"fmt"

	"analytics-srv/internal/aggregation"
	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/internal/model"
)

type persistStats struct {
	childWriteFailures int
	published          bool
}

// persist writes the result: parent rows in one transaction, then child lists per owner,
// then annotation write-back and the result event. Only the parent write is fatal.
func (uc *implUseCase) persist(ctx context.Context, result model.AnalyticsResult) (persistStats, error) {
	var stats persistStats

	// Step 1: Overview, distribution and periods
	ids, err := uc.repo.UpsertAggregates(ctx, repo.UpsertAggregatesOptions{
		RunID:        result.RunID,
		BusinessID:   result.BusinessID,
		Platform:     result.Platform,
		ComputedAt:   result.ComputedAt,
		Overview:     result.Overview,
		Distribution: result.Distribution,
		Periods:      result.Periods,
	})
	if err != nil {
		uc.l.Errorf(ctx, "aggregation.usecase.persist: Failed to upsert aggregates for business %s: %v", result.BusinessID, err)
		return stats, fmt.Errorf("%w: %w", aggregation.ErrPersistenceFailed, err)
	}

	// Step 2: Child lists, one owner at a time
	if err := uc.repo.ReplaceChildren(ctx, repo.ReplaceChildrenOptions{
		OwnerKind: repo.OwnerOverview,
		OwnerID:   ids.OverviewID,
		Keywords:  result.Overview.TopKeywords,
		Topics:    result.Overview.TopTopics,
		Tags:      result.Overview.TopTags,
	}); err != nil {
		stats.childWriteFailures++
		uc.l.Warnf(ctx, "aggregation.usecase.persist: %v", &aggregation.ChildWriteError{
			OwnerKind: string(repo.OwnerOverview),
			OwnerID:   ids.OverviewID,
			PeriodKey: model.AllTimeKey,
			Err:       err,
		})
	}

	for _, m := range result.Periods {
		ownerID, ok := ids.PeriodIDs[m.PeriodKey]
		if !ok {
			stats.childWriteFailures++
			uc.l.Warnf(ctx, "aggregation.usecase.persist: No row id for period %d of business %s", m.PeriodKey, result.BusinessID)
			continue
		}
		if err := uc.repo.ReplaceChildren(ctx, repo.ReplaceChildrenOptions{
			OwnerKind: repo.OwnerPeriod,
			OwnerID:   ownerID,
			Keywords:  m.TopKeywords,
			Topics:    m.TopTopics,
			Tags:      m.TopTags,
		}); err != nil {
			stats.childWriteFailures++
			uc.l.Warnf(ctx, "aggregation.usecase.persist: %v", &aggregation.ChildWriteError{
				OwnerKind: string(repo.OwnerPeriod),
				OwnerID:   ownerID,
				PeriodKey: m.PeriodKey,
				Err:       err,
			})
		}
	}

	// Step 3: Annotation write-back
	if len(result.Annotations) > 0 {
		if err := uc.reviews.SaveAnnotations(ctx, result.Annotations); err != nil {
			uc.l.Warnf(ctx, "aggregation.usecase.persist: Failed to save %d annotations for business %s: %v",
				len(result.Annotations), result.BusinessID, err)
		}
	}

	// Step 4: Result event
	if uc.producer != nil {
		if err := uc.producer.PublishResultUpdated(ctx, result); err != nil {
			uc.l.Warnf(ctx, "aggregation.usecase.persist: Failed to publish result for business %s: %v", result.BusinessID, err)
		} else {
			stats.published = true
		}
	}

	return stats, nil
}
