package model

// Rating bucket keys for recommend-only platforms.
const (
	BucketRecommended    = "recommended"
	BucketNotRecommended = "not_recommended"
)

// EngagementLevelBuckets splits reviews by likes/comments.
type EngagementLevelBuckets struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// PresenceBuckets splits reviews by whether they have something.
type PresenceBuckets struct {
	With    int `json:"with"`
	Without int `json:"without"`
}

// RecencyBuckets splits reviews by age. Each review is in exactly one bucket.
type RecencyBuckets struct {
	LastWeek      int `json:"last_week"`
	LastMonth     int `json:"last_month"`
	LastSixMonths int `json:"last_six_months"`
	Older         int `json:"older"`
}

// CategoricalBuckets is a platform-specific dimension such as trip type. Its sum may be below the total.
type CategoricalBuckets struct {
	Dimension string         `json:"dimension"`
	Counts    map[string]int `json:"counts"`
}

// DistributionSnapshot is the per-business breakdown over the full review set.
type DistributionSnapshot struct {
	TotalReviews    int                    `json:"total_reviews"`
	Rating          map[string]int         `json:"rating"`
	EngagementLevel EngagementLevelBuckets `json:"engagement_level"`
	Photos          PresenceBuckets        `json:"photos"`
	Tags            PresenceBuckets        `json:"tags"`
	Replies         PresenceBuckets        `json:"replies"`
	Recency         RecencyBuckets         `json:"recency"`
	Categorical     *CategoricalBuckets    `json:"categorical,omitempty"`
}
