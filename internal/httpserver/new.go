package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/minio"
	pkgRedis "analytics-srv/pkg/redis"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Dependencies probed by /ready
	postgresDB    Pinger
	redisClient   pkgRedis.IRedis
	minioClient   minio.Connection
	kafkaProducer pkgKafka.IProducer
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Dependencies probed by /ready
	PostgresDB    Pinger
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.Connection
	KafkaProducer pkgKafka.IProducer
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Dependencies
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Dependencies
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// MinIO and Kafka are optional probes

	return nil
}
