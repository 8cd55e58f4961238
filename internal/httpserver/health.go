package httpserver

import (
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Review analytics aggregation engine"
	HealthVersion = "1.0.0"
	ServiceName   = "analytics-srv"
)

// healthCheck handles health check requests
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (Postgres + Redis, MinIO and Kafka when wired).
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: Postgres ping failed: %v", err)
		response.Unavailable(c, gin.H{
			"status":  "not ready",
			"message": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: Redis ping failed: %v", err)
		response.Unavailable(c, gin.H{
			"status":  "not ready",
			"message": "Redis connection failed",
			"error":   err.Error(),
		})
		return
	}

	body := gin.H{
		"status":   "ready",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": "connected",
		"redis":    "connected",
	}

	if srv.minioClient != nil {
		if err := srv.minioClient.HealthCheck(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: MinIO health check failed: %v", err)
			response.Unavailable(c, gin.H{
				"status":  "not ready",
				"message": "MinIO connection failed",
				"error":   err.Error(),
			})
			return
		}
		body["minio"] = "connected"
	}
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: Kafka producer health check failed: %v", err)
			response.Unavailable(c, gin.H{
				"status":  "not ready",
				"message": "Kafka producer unavailable",
				"error":   err.Error(),
			})
			return
		}
		body["kafka"] = "connected"
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
