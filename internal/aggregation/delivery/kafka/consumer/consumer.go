package consumer

import (
	"context"
)

// ConsumeBatchIngested starts consuming review batch ingested messages
func (c *Consumer) ConsumeBatchIngested(ctx context.Context) error {
	// Create consumer group
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.batchIngestedGroup = group

	// Create handler
	handler := &batchIngestedHandler{
		consumer: c,
	}
	topic := c.ingestTopic()

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "aggregation.delivery.kafka.consumer.ConsumeBatchIngested: Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "aggregation.delivery.kafka.consumer.ConsumeBatchIngested: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}
