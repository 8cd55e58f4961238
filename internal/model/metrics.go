package model

import "time"

// TermCount is one row of a keyword/topic/tag frequency table.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// RatingHistogram counts reviews per rounded star rating. Unrated holds rating-platform
// reviews stored without a rating.
type RatingHistogram struct {
	OneStar   int `json:"1"`
	TwoStar   int `json:"2"`
	ThreeStar int `json:"3"`
	FourStar  int `json:"4"`
	FiveStar  int `json:"5"`
	Unrated   int `json:"unrated"`
}

// Add counts one review in bucket 1..5. Other values are ignored.
func (h *RatingHistogram) Add(bucket int) {
	switch bucket {
	case 1:
		h.OneStar++
	case 2:
		h.TwoStar++
	case 3:
		h.ThreeStar++
	case 4:
		h.FourStar++
	case 5:
		h.FiveStar++
	}
}

// Count returns the count of bucket 1..5.
func (h RatingHistogram) Count(bucket int) int {
	switch bucket {
	case 1:
		return h.OneStar
	case 2:
		return h.TwoStar
	case 3:
		return h.ThreeStar
	case 4:
		return h.FourStar
	case 5:
		return h.FiveStar
	}
	return 0
}

// Total is the sum over all buckets, unrated included.
func (h RatingHistogram) Total() int {
	return h.OneStar + h.TwoStar + h.ThreeStar + h.FourStar + h.FiveStar + h.Unrated
}

// PeriodMetrics is the summary of one window for one business.
type PeriodMetrics struct {
	PeriodKey   int        `json:"period_key"`
	Label       string     `json:"label"`
	WindowStart *time.Time `json:"window_start,omitempty"`
	WindowEnd   *time.Time `json:"window_end,omitempty"`

	ReviewCount int `json:"review_count"`

	// Rating platforms
	AverageRating   *float64        `json:"average_rating"`
	RatingHistogram RatingHistogram `json:"rating_histogram"`

	// Recommend platforms
	RecommendedCount    int      `json:"recommended_count"`
	NotRecommendedCount int      `json:"not_recommended_count"`
	RecommendationRate  *float64 `json:"recommendation_rate"`

	// ApprovalRate is the recommendation rate on recommend platforms and the share of 4-5 star reviews otherwise.
	ApprovalRate float64 `json:"approval_rate"`

	// Engagement
	TotalLikes             int     `json:"total_likes"`
	TotalComments          int     `json:"total_comments"`
	TotalPhotos            int     `json:"total_photos"`
	TotalEngagement        int     `json:"total_engagement"`
	AvgLikesPerReview      float64 `json:"avg_likes_per_review"`
	AvgCommentsPerReview   float64 `json:"avg_comments_per_review"`
	AvgPhotosPerReview     float64 `json:"avg_photos_per_review"`
	AvgEngagementPerReview float64 `json:"avg_engagement_per_review"`

	// Sentiment
	PositiveCount    int      `json:"positive_count"`
	NeutralCount     int      `json:"neutral_count"`
	NegativeCount    int      `json:"negative_count"`
	AverageSentiment *float64 `json:"average_sentiment"`
	UrgentCount      int      `json:"urgent_count"`

	// Frequency tables
	TopKeywords []TermCount `json:"top_keywords"`
	TopTopics   []TermCount `json:"top_topics"`
	TopTags     []TermCount `json:"top_tags"`

	// Owner responses
	ResponseCount    int      `json:"response_count"`
	ResponseRate     float64  `json:"response_rate"`
	AvgResponseHours *float64 `json:"avg_response_hours"`

	// AvgReviewQuality is the raw mean of per-review quality before clamping.
	AvgReviewQuality float64 `json:"avg_review_quality"`

	// Scores
	EngagementScore float64 `json:"engagement_score"`
	ViralityScore   float64 `json:"virality_score"`
	QualityScore    float64 `json:"quality_score"`
}
