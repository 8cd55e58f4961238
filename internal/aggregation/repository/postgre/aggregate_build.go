package postgre

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/internal/model"
)

func buildOverviewArgs(opt repo.UpsertAggregatesOptions) []any {
	o := opt.Overview
	return []any{
		uuid.NewString(), opt.BusinessID, opt.Platform, opt.RunID, o.TotalReviews,
		nullFloat(o.AverageRating), nullFloat(o.RecommendationRate), o.ApprovalRate, o.ResponseRate, nullFloat(o.AvgResponseHours),
		nullFloat(o.AverageSentiment), o.UrgentCount, o.EngagementScore, o.ViralityScore, o.QualityScore,
		string(o.EngagementTrend), string(o.RatingTrend), nullTime(o.LastReviewAt), opt.ComputedAt,
	}
}

func buildDistributionArgs(opt repo.UpsertAggregatesOptions) ([]any, error) {
	snapshot, err := json.Marshal(opt.Distribution)
	if err != nil {
		return nil, err
	}
	return []any{
		uuid.NewString(), opt.BusinessID, opt.Platform, opt.RunID, opt.Distribution.TotalReviews, snapshot, opt.ComputedAt,
	}, nil
}

func buildPeriodArgs(opt repo.UpsertAggregatesOptions, m model.PeriodMetrics) ([]any, error) {
	histogram, err := json.Marshal(m.RatingHistogram)
	if err != nil {
		return nil, err
	}
	return []any{
		uuid.NewString(), opt.BusinessID, opt.Platform, m.PeriodKey, m.Label, nullTime(m.WindowStart), nullTime(m.WindowEnd), opt.RunID,
		m.ReviewCount, nullFloat(m.AverageRating), histogram,
		m.RecommendedCount, m.NotRecommendedCount, nullFloat(m.RecommendationRate), m.ApprovalRate,
		m.TotalLikes, m.TotalComments, m.TotalPhotos, m.TotalEngagement,
		m.AvgLikesPerReview, m.AvgCommentsPerReview, m.AvgPhotosPerReview, m.AvgEngagementPerReview,
		m.PositiveCount, m.NeutralCount, m.NegativeCount, nullFloat(m.AverageSentiment), m.UrgentCount,
		m.ResponseCount, m.ResponseRate, nullFloat(m.AvgResponseHours), m.AvgReviewQuality,
		m.EngagementScore, m.ViralityScore, m.QualityScore, opt.ComputedAt,
	}, nil
}

// buildChildArrays splits a term list into parallel arrays for an unnest insert.
func buildChildArrays(terms []model.TermCount) (ids, names pq.StringArray, counts, ranks pq.Int64Array) {
	ids = make(pq.StringArray, 0, len(terms))
	names = make(pq.StringArray, 0, len(terms))
	counts = make(pq.Int64Array, 0, len(terms))
	ranks = make(pq.Int64Array, 0, len(terms))
	for i, t := range terms {
		ids = append(ids, uuid.NewString())
		names = append(names, t.Term)
		counts = append(counts, int64(t.Count))
		ranks = append(ranks, int64(i+1))
	}
	return ids, names, counts, ranks
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

// pqCode returns the SQLSTATE of a driver error, empty for other errors.
func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
