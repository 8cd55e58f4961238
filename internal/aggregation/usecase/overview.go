package usecase

import (
	"math"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/platform"
)

// trendTolerance is the relative change a trend step must exceed.
const trendTolerance = 0.02

// Windows compared by the trend labels, oldest first.
var trendWindows = []int{180, 30, 7}

// buildOverview derives the all-time snapshot record from the computed periods.
func buildOverview(businessID string, p platform.Platform, reviews []model.Review, periods []model.PeriodMetrics, now time.Time) model.Overview {
	byKey := make(map[int]model.PeriodMetrics, len(periods))
	for _, m := range periods {
		byKey[m.PeriodKey] = m
	}
	all := byKey[model.AllTimeKey]

	o := model.Overview{
		BusinessID:         businessID,
		Platform:           p.Name(),
		TotalReviews:       all.ReviewCount,
		AverageRating:      all.AverageRating,
		RecommendationRate: all.RecommendationRate,
		ApprovalRate:       all.ApprovalRate,
		ResponseRate:       all.ResponseRate,
		AvgResponseHours:   all.AvgResponseHours,
		AverageSentiment:   all.AverageSentiment,
		UrgentCount:        all.UrgentCount,
		EngagementScore:    all.EngagementScore,
		ViralityScore:      all.ViralityScore,
		QualityScore:       all.QualityScore,
		TopKeywords:        all.TopKeywords,
		TopTopics:          all.TopTopics,
		TopTags:            all.TopTags,
		ComputedAt:         now,
	}

	o.EngagementTrend = trend(byKey, func(m model.PeriodMetrics) (float64, bool) {
		return m.AvgEngagementPerReview, true
	})
	o.RatingTrend = trend(byKey, func(m model.PeriodMetrics) (float64, bool) {
		if p.Kind() == platform.KindRecommend {
			if m.RecommendationRate == nil {
				return 0, false
			}
			return *m.RecommendationRate, true
		}
		if m.AverageRating == nil {
			return 0, false
		}
		return *m.AverageRating, true
	})

	for i := range reviews {
		if o.LastReviewAt == nil || reviews[i].PublishedAt.After(*o.LastReviewAt) {
			t := reviews[i].PublishedAt
			o.LastReviewAt = &t
		}
	}

	return o
}

// trend compares three windows toward the present. An empty window gives insufficient data.
func trend(byKey map[int]model.PeriodMetrics, value func(model.PeriodMetrics) (float64, bool)) model.Trend {
	points := make([]float64, 0, len(trendWindows))
	for _, key := range trendWindows {
		m, ok := byKey[key]
		if !ok || m.ReviewCount == 0 {
			return model.TrendInsufficientData
		}
		v, ok := value(m)
		if !ok {
			return model.TrendInsufficientData
		}
		points = append(points, v)
	}

	rising, declining := true, true
	for i := 1; i < len(points); i++ {
		delta := points[i] - points[i-1]
		threshold := trendTolerance * math.Max(math.Abs(points[i-1]), 1)
		if delta <= threshold {
			rising = false
		}
		if delta >= -threshold {
			declining = false
		}
	}

	switch {
	case rising:
		return model.TrendRising
	case declining:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}
