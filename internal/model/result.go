package model

import "time"

// Trend is a three-point slope label.
type Trend string

const (
	TrendRising           Trend = "rising"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)

// Overview is the all-time snapshot record of one business. It is the root row of a result.
type Overview struct {
	BusinessID string `json:"business_id"`
	Platform   string `json:"platform"`

	TotalReviews       int      `json:"total_reviews"`
	AverageRating      *float64 `json:"average_rating"`
	RecommendationRate *float64 `json:"recommendation_rate"`
	ApprovalRate       float64  `json:"approval_rate"`
	ResponseRate       float64  `json:"response_rate"`
	AvgResponseHours   *float64 `json:"avg_response_hours"`
	AverageSentiment   *float64 `json:"average_sentiment"`
	UrgentCount        int      `json:"urgent_count"`

	EngagementScore float64 `json:"engagement_score"`
	ViralityScore   float64 `json:"virality_score"`
	QualityScore    float64 `json:"quality_score"`

	EngagementTrend Trend `json:"engagement_trend"`
	RatingTrend     Trend `json:"rating_trend"`

	LastReviewAt *time.Time `json:"last_review_at"`

	TopKeywords []TermCount `json:"top_keywords"`
	TopTopics   []TermCount `json:"top_topics"`
	TopTags     []TermCount `json:"top_tags"`

	ComputedAt time.Time `json:"computed_at"`
}

// AnalyticsResult is everything one run produced. It replaces the previous result as a whole.
type AnalyticsResult struct {
	RunID      string    `json:"run_id"`
	BusinessID string    `json:"business_id"`
	Platform   string    `json:"platform"`
	ComputedAt time.Time `json:"computed_at"`

	Overview     Overview             `json:"overview"`
	Periods      []PeriodMetrics      `json:"periods"`
	Distribution DistributionSnapshot `json:"distribution"`

	// Annotations computed during this run for reviews that had none.
	Annotations []ReviewAnnotation `json:"-"`
}

// Period returns the metrics of the given key.
func (r AnalyticsResult) Period(key int) (PeriodMetrics, bool) {
	for _, p := range r.Periods {
		if p.PeriodKey == key {
			return p, true
		}
	}
	return PeriodMetrics{}, false
}
