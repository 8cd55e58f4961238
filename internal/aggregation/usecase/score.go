package usecase

import (
	"math"

	"analytics-srv/internal/model"
)

// Benchmarks at which a component of a score saturates.
const (
	engagementBenchmark = 10.0
	photoBenchmark      = 1.0
	likeBenchmark       = 10.0
	commentBenchmark    = 5.0
)

// Per-review quality
const (
	qualityBase           = 50.0
	qualityAnnotated      = 20.0
	qualityManyKeywords   = 20.0
	qualitySomeKeywords   = 10.0
	qualityHighEngagement = 10.0
	qualityAnyEngagement  = 5.0
	qualityMax            = 100.0
)

type scores struct {
	Engagement float64
	Virality   float64
	Quality    float64
}

// normalize derives the 0-100 scores of one window. Each score is clamped on its own.
func normalize(m model.PeriodMetrics) scores {
	engagement := 50*saturate(m.AvgEngagementPerReview, engagementBenchmark) +
		25*saturate(m.AvgPhotosPerReview, photoBenchmark) +
		25*(m.ResponseRate/100)

	virality := 30*saturate(m.AvgLikesPerReview, likeBenchmark) +
		40*saturate(m.AvgCommentsPerReview, commentBenchmark) +
		30*(m.ApprovalRate/100)

	return scores{
		Engagement: clampScore(engagement),
		Virality:   clampScore(virality),
		Quality:    clampScore(m.AvgReviewQuality),
	}
}

// reviewQuality scores one review, capped at qualityMax.
func reviewQuality(r model.Review) float64 {
	q := qualityBase
	if r.Annotation != nil {
		q += qualityAnnotated
		switch n := len(r.Annotation.Keywords); {
		case n >= 5:
			q += qualityManyKeywords
		case n >= 2:
			q += qualitySomeKeywords
		}
	}

	switch e := r.Engagement(); {
	case e > 5:
		q += qualityHighEngagement
	case e > 0:
		q += qualityAnyEngagement
	}

	return math.Min(q, qualityMax)
}

func saturate(v, benchmark float64) float64 {
	return math.Min(1, v/benchmark)
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return round2(math.Max(0, math.Min(100, v)))
}
