package consumer

import (
	"fmt"

	"analytics-srv/config"
	"analytics-srv/internal/aggregation"
	kafkaDelivery "analytics-srv/internal/aggregation/delivery/kafka"
	"analytics-srv/internal/review"
	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
)

// Config holds the configuration for the aggregation consumer
type Config struct {
	Logger        log.Logger
	KafkaConfig   config.KafkaConfig
	UseCase       aggregation.UseCase
	ReviewUseCase review.UseCase
}

// Consumer manages Kafka consumer groups for the aggregation domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          aggregation.UseCase
	reviewUC    review.UseCase

	// Consumer group for review batch ingested
	batchIngestedGroup pkgKafka.IConsumer
}

// New creates a new aggregation consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if cfg.ReviewUseCase == nil {
		return nil, fmt.Errorf("review usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
		reviewUC:    cfg.ReviewUseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.batchIngestedGroup != nil {
		if err := c.batchIngestedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close batch ingested group: %w", err)
		}
	}

	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreateConsumerGroupFailed, groupID, err)
	}

	return group, nil
}

func (c *Consumer) ingestTopic() string {
	if c.kafkaConfig.IngestTopic != "" {
		return c.kafkaConfig.IngestTopic
	}
	return kafkaDelivery.TopicReviewsBatchIngested
}

func (c *Consumer) groupID() string {
	if c.kafkaConfig.GroupID != "" {
		return c.kafkaConfig.GroupID
	}
	return kafkaDelivery.ConsumerGroupReviewsBatchIngested
}
