package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"analytics-srv/internal/aggregation"
	kafkaDelivery "analytics-srv/internal/aggregation/delivery/kafka"
	"analytics-srv/internal/review"
	"analytics-srv/pkg/log"
)

// handleBatchIngestedMessage stores the batch file when one is attached, then recomputes analytics.
// A nil return marks the message.
func (c *Consumer) handleBatchIngestedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	ctx = log.WithTraceID(ctx, uuid.NewString())

	c.l.Infof(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.BatchIngestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	// 2. Validate message (format only)
	if strings.TrimSpace(message.BusinessID) == "" || strings.TrimSpace(message.Platform) == "" {
		c.l.Warnf(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	// 3. Store the batch file
	if message.FileURL != "" {
		out, err := c.reviewUC.Ingest(ctx, toIngestInput(message))
		if err != nil {
			if errors.Is(err, review.ErrUnknownPlatform) || errors.Is(err, review.ErrInvalidInput) || errors.Is(err, review.ErrFileNotFound) {
				c.l.Warnf(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Unprocessable batch (skipping): %v", err)
				return nil
			}
			return fmt.Errorf("ingest error: %w", err)
		}
		c.l.Infof(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Stored batch for %s/%s: stored=%d skipped=%d duplicates=%d",
			message.BusinessID, message.Platform, out.Stored, out.Skipped, out.Duplicates)
	}

	// 4. Recompute analytics
	output, err := c.uc.Run(ctx, toRunInput(message))
	if err != nil {
		switch {
		case errors.Is(err, aggregation.ErrRunInProgress):
			c.l.Infof(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Run already in progress for %s, skipping", message.BusinessID)
			return nil
		case errors.Is(err, aggregation.ErrNoData), errors.Is(err, aggregation.ErrInvalidBusiness):
			c.l.Warnf(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Nothing to aggregate for %s: %v", message.BusinessID, err)
			return nil
		}
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "aggregation.delivery.kafka.consumer.handleBatchIngestedMessage: Run %s for %s finished: reviews=%d annotated=%d",
		output.RunID, message.BusinessID, output.ReviewCount, output.Annotated)
	return nil
}
