package producer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "analytics-srv/internal/aggregation/delivery/kafka"
	"analytics-srv/internal/model"
)

// PublishResultUpdated publishes a summary of a freshly persisted result
func (p *implProducer) PublishResultUpdated(ctx context.Context, result model.AnalyticsResult) error {
	// Convert to message DTO
	msg := toResultUpdatedMessage(result)

	// Marshal to JSON
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal result updated: %w", err)
	}

	// Publish to Kafka, keyed by business so one business stays on one partition
	key := []byte(result.BusinessID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish result updated: %w", err)
	}

	p.l.Infof(ctx, "Published result updated for business %s: run %s", result.BusinessID, result.RunID)
	return nil
}

func toResultUpdatedMessage(result model.AnalyticsResult) kafkaDelivery.ResultUpdatedMessage {
	ov := result.Overview
	return kafkaDelivery.ResultUpdatedMessage{
		BusinessID:      result.BusinessID,
		Platform:        result.Platform,
		RunID:           result.RunID,
		ComputedAt:      result.ComputedAt,
		TotalReviews:    ov.TotalReviews,
		AverageRating:   ov.AverageRating,
		EngagementScore: ov.EngagementScore,
		ViralityScore:   ov.ViralityScore,
		QualityScore:    ov.QualityScore,
		EngagementTrend: string(ov.EngagementTrend),
		RatingTrend:     string(ov.RatingTrend),
	}
}
