package consumer

import (
	"analytics-srv/internal/aggregation"
	kafkaDelivery "analytics-srv/internal/aggregation/delivery/kafka"
	"analytics-srv/internal/review"
)

// toIngestInput maps the Kafka message DTO to the review ingest input.
func toIngestInput(m kafkaDelivery.BatchIngestedMessage) review.IngestInput {
	return review.IngestInput{
		BusinessID: m.BusinessID,
		Platform:   m.Platform,
		FileURL:    m.FileURL,
	}
}

// toRunInput maps the Kafka message DTO to the aggregation run input.
func toRunInput(m kafkaDelivery.BatchIngestedMessage) aggregation.RunInput {
	return aggregation.RunInput{
		BusinessID: m.BusinessID,
		Platform:   m.Platform,
	}
}
