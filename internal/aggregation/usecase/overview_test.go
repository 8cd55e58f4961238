package usecase

import (
	"testing"

	"analytics-srv/internal/model"
)

func trendPeriods(avg180, avg30, avg7 float64, counts ...int) map[int]model.PeriodMetrics {
	if len(counts) == 0 {
		counts = []int{10, 10, 10}
	}
	return map[int]model.PeriodMetrics{
		180: {PeriodKey: 180, ReviewCount: counts[0], AvgEngagementPerReview: avg180},
		30:  {PeriodKey: 30, ReviewCount: counts[1], AvgEngagementPerReview: avg30},
		7:   {PeriodKey: 7, ReviewCount: counts[2], AvgEngagementPerReview: avg7},
	}
}

func TestTrend(t *testing.T) {
	engagement := func(m model.PeriodMetrics) (float64, bool) { return m.AvgEngagementPerReview, true }

	tests := []struct {
		name    string
		periods map[int]model.PeriodMetrics
		want    model.Trend
	}{
		{name: "rising", periods: trendPeriods(1, 2, 3), want: model.TrendRising},
		{name: "declining", periods: trendPeriods(6, 4, 2), want: model.TrendDeclining},
		{name: "flat", periods: trendPeriods(3, 3, 3), want: model.TrendStable},
		{name: "within tolerance", periods: trendPeriods(5, 5.05, 5.1), want: model.TrendStable},
		{name: "up then down", periods: trendPeriods(1, 5, 2), want: model.TrendStable},
		{name: "empty recent window", periods: trendPeriods(1, 2, 3, 10, 5, 0), want: model.TrendInsufficientData},
		{name: "missing window", periods: map[int]model.PeriodMetrics{30: {ReviewCount: 1}, 7: {ReviewCount: 1}}, want: model.TrendInsufficientData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trend(tt.periods, engagement); got != tt.want {
				t.Errorf("trend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildOverview(t *testing.T) {
	p := mustPlatform(t, "facebook")
	rate := 75.0
	periods := []model.PeriodMetrics{
		{PeriodKey: 7, ReviewCount: 0},
		{PeriodKey: 30, ReviewCount: 2},
		{PeriodKey: 180, ReviewCount: 4},
		{
			PeriodKey:          model.AllTimeKey,
			ReviewCount:        4,
			RecommendationRate: &rate,
			ApprovalRate:       rate,
			UrgentCount:        1,
			EngagementScore:    12.5,
			TopKeywords:        []model.TermCount{{Term: "pasta", Count: 2}},
		},
	}
	reviews := []model.Review{
		{PublishedAt: fixedNow.AddDate(0, 0, -20)},
		{PublishedAt: fixedNow.AddDate(0, 0, -10)},
		{PublishedAt: fixedNow.AddDate(0, 0, -90)},
	}

	o := buildOverview("biz-9", p, reviews, periods, fixedNow)

	if o.BusinessID != "biz-9" || o.Platform != "facebook" || o.TotalReviews != 4 {
		t.Errorf("identity = %s/%s/%d", o.BusinessID, o.Platform, o.TotalReviews)
	}
	if o.RecommendationRate == nil || *o.RecommendationRate != 75 || o.ApprovalRate != 75 {
		t.Errorf("rates = %v/%v, want 75", o.RecommendationRate, o.ApprovalRate)
	}
	if o.UrgentCount != 1 || o.EngagementScore != 12.5 || len(o.TopKeywords) != 1 {
		t.Errorf("overview does not mirror the all-time period: %+v", o)
	}
	if o.LastReviewAt == nil || !o.LastReviewAt.Equal(fixedNow.AddDate(0, 0, -10)) {
		t.Errorf("LastReviewAt = %v, want newest review", o.LastReviewAt)
	}
	if o.EngagementTrend != model.TrendInsufficientData || o.RatingTrend != model.TrendInsufficientData {
		t.Errorf("trends = %v/%v, want insufficient_data", o.EngagementTrend, o.RatingTrend)
	}
	if !o.ComputedAt.Equal(fixedNow) {
		t.Errorf("ComputedAt = %v, want %v", o.ComputedAt, fixedNow)
	}
}
