package kafka

import (
	"time"
)

// BatchIngestedMessage - Kafka message for reviews.batch.ingested
type BatchIngestedMessage struct {
	BusinessID  string    `json:"business_id"`
	Platform    string    `json:"platform"`
	FileURL     string    `json:"file_url"`
	ReviewCount int       `json:"review_count"`
	IngestedAt  time.Time `json:"ingested_at"`
}

// ResultUpdatedMessage - Kafka message for analytics.result.updated
type ResultUpdatedMessage struct {
	BusinessID      string    `json:"business_id"`
	Platform        string    `json:"platform"`
	RunID           string    `json:"run_id"`
	ComputedAt      time.Time `json:"computed_at"`
	TotalReviews    int       `json:"total_reviews"`
	AverageRating   *float64  `json:"average_rating,omitempty"`
	EngagementScore float64   `json:"engagement_score"`
	ViralityScore   float64   `json:"virality_score"`
	QualityScore    float64   `json:"quality_score"`
	EngagementTrend string    `json:"engagement_trend"`
	RatingTrend     string    `json:"rating_trend"`
}
