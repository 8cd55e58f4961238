package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"analytics-srv/config"
	"analytics-srv/config/kafka"
	"analytics-srv/config/postgre"
	"analytics-srv/config/redis"
	"analytics-srv/internal/aggregation"
	aggregationProducer "analytics-srv/internal/aggregation/delivery/kafka/producer"
	aggregationPostgre "analytics-srv/internal/aggregation/repository/postgre"
	aggregationRedis "analytics-srv/internal/aggregation/repository/redis"
	aggregationUsecase "analytics-srv/internal/aggregation/usecase"
	annotationUsecase "analytics-srv/internal/annotation/usecase"
	reviewPostgre "analytics-srv/internal/review/repository/postgre"
	reviewUsecase "analytics-srv/internal/review/usecase"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/sentiment"
)

// aggregate runs the engine once for one business and exits.
func main() {
	businessID := flag.String("business", "", "business id to aggregate (required)")
	platformName := flag.String("platform", "google", "review platform of the business")
	flag.Parse()

	if *businessID == "" {
		fmt.Fprintln(os.Stderr, "usage: aggregate -business <id> [-platform google|facebook|tripadvisor|booking]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, logger, cfg, aggregation.RunInput{BusinessID: *businessID, Platform: *platformName})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, logger log.Logger, cfg *config.Config, input aggregation.RunInput) int {
	kafkaProducer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return 1
	}
	defer kafka.DisconnectProducer()

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return 1
	}
	defer redis.Disconnect()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return 1
	}
	defer postgre.Disconnect(ctx, postgresDB)

	// No batch ingest here, so the review usecase needs no object storage.
	reviewUC := reviewUsecase.New(logger, reviewPostgre.New(postgresDB, logger), nil)
	uc := aggregationUsecase.New(
		logger,
		reviewUC,
		annotationUsecase.New(logger, sentiment.New()),
		aggregationPostgre.New(postgresDB, logger),
		aggregationRedis.New(redisClient, logger),
		aggregationProducer.New(logger, kafkaProducer),
		cfg.Aggregation.LockTTL,
	)

	out, err := uc.Run(ctx, input)
	if err != nil {
		if errors.Is(err, aggregation.ErrNoData) {
			logger.Warnf(ctx, "No reviews stored for %s/%s", input.BusinessID, input.Platform)
			return 0
		}
		logger.Errorf(ctx, "Run failed in state %s: %v", out.State, err)
		return 1
	}

	ov := out.Result.Overview
	logger.Infof(ctx, "Run %s done in %s: reviews=%d annotated=%d engagement=%.2f virality=%.2f quality=%.2f child_failures=%d published=%t",
		out.RunID, out.Duration, out.ReviewCount, out.Annotated,
		ov.EngagementScore, ov.ViralityScore, ov.QualityScore, out.ChildWriteFailures, out.Published)
	return 0
}
