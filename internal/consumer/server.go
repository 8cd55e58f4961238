package consumer

import (
	"context"
	"database/sql"

	"golang.org/x/sync/errgroup"

	"analytics-srv/config"
	"analytics-srv/internal/httpserver"
	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/minio"
	"analytics-srv/pkg/redis"
)

// ConsumerServer runs the Kafka consumer, the batch poller and the health server
type ConsumerServer struct {
	// Core Configuration
	l                 log.Logger
	kafkaConfig       config.KafkaConfig
	aggregationConfig config.AggregationConfig

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Health server
	httpServer *httpserver.HTTPServer
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger            log.Logger
	KafkaConfig       config.KafkaConfig
	AggregationConfig config.AggregationConfig

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Health server (optional)
	HTTPServer *httpserver.HTTPServer
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers and the poller, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	domains, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, domains); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return domains.poller.Start(gctx)
	})
	if srv.httpServer != nil {
		g.Go(func() error {
			return srv.httpServer.Run(gctx)
		})
	}

	srv.l.Info(ctx, "Consumer Server is running")

	runErr := g.Wait()
	if runErr != nil {
		srv.l.Errorf(ctx, "Background task failed: %v", runErr)
	} else {
		srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")
	}

	srv.stopConsumers(ctx, domains)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return runErr
}
