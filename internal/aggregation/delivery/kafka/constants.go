package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Consumer Topics
	TopicReviewsBatchIngested = "reviews.batch.ingested"

	// Producer Topics
	TopicResultUpdated = "analytics.result.updated"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupReviewsBatchIngested = "analytics-srv-ingest"
)
