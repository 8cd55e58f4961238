package consumer

import (
	"context"
	"fmt"

	aggregationConsumer "analytics-srv/internal/aggregation/delivery/kafka/consumer"
	aggregationProducer "analytics-srv/internal/aggregation/delivery/kafka/producer"
	aggregationPostgre "analytics-srv/internal/aggregation/repository/postgre"
	aggregationRedis "analytics-srv/internal/aggregation/repository/redis"
	aggregationUsecase "analytics-srv/internal/aggregation/usecase"
	annotationUsecase "analytics-srv/internal/annotation/usecase"
	"analytics-srv/internal/poller"
	reviewPostgre "analytics-srv/internal/review/repository/postgre"
	reviewUsecase "analytics-srv/internal/review/usecase"
	"analytics-srv/pkg/sentiment"
)

// domains holds references to all started components for cleanup
type domains struct {
	aggregationConsumer *aggregationConsumer.Consumer
	poller              poller.Poller
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domains, error) {
	// Review domain
	reviewRepo := reviewPostgre.New(srv.postgresDB, srv.l)
	reviewUC := reviewUsecase.New(srv.l, reviewRepo, srv.minioClient)

	// Annotation domain
	annotationUC := annotationUsecase.New(srv.l, sentiment.New())

	// Aggregation domain
	aggregateRepo := aggregationPostgre.New(srv.postgresDB, srv.l)
	lockRepo := aggregationRedis.New(srv.redisClient, srv.l)
	producer := aggregationProducer.New(srv.l, srv.kafkaProducer)
	aggregationUC := aggregationUsecase.New(
		srv.l,
		reviewUC,
		annotationUC,
		aggregateRepo,
		lockRepo,
		producer,
		srv.aggregationConfig.LockTTL,
	)

	aggregationCons, err := aggregationConsumer.New(aggregationConsumer.Config{
		Logger:        srv.l,
		KafkaConfig:   srv.kafkaConfig,
		UseCase:       aggregationUC,
		ReviewUseCase: reviewUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aggregation consumer: %w", err)
	}

	batchPoller := poller.New(srv.l, reviewUC, aggregationUC, poller.Config{
		Workers:        srv.aggregationConfig.Workers,
		Interval:       srv.aggregationConfig.PollInterval,
		MaxRetries:     srv.aggregationConfig.MaxRetries,
		RetryBaseDelay: srv.aggregationConfig.RetryBaseDelay,
	})

	srv.l.Infof(ctx, "Review, annotation and aggregation domains initialized")

	return &domains{
		aggregationConsumer: aggregationCons,
		poller:              batchPoller,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, d *domains) error {
	if err := d.aggregationConsumer.ConsumeBatchIngested(ctx); err != nil {
		return fmt.Errorf("failed to start aggregation consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, d *domains) {
	if d.aggregationConsumer != nil {
		if err := d.aggregationConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing aggregation consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
