package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"analytics-srv/pkg/log"
	pkgRedis "analytics-srv/pkg/redis"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

// fakeRedis only answers Ping.
type fakeRedis struct {
	pkgRedis.IRedis
	err error
}

func (f fakeRedis) Ping(context.Context) error { return f.err }

type fakeKafka struct{ err error }

func (f fakeKafka) Publish(_, _ []byte) error { return nil }
func (f fakeKafka) Close() error              { return nil }
func (f fakeKafka) HealthCheck() error        { return f.err }

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	cfg.Mode = gin.TestMode
	cfg.Port = 8080
	srv, err := New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	srv.mapHandlers()
	return srv
}

func TestSystemRoutes(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name       string
		path       string
		cfg        Config
		wantStatus int
		wantField  string
	}{
		{
			name:       "health",
			path:       "/health",
			cfg:        Config{PostgresDB: fakePinger{}, RedisClient: fakeRedis{}},
			wantStatus: http.StatusOK,
			wantField:  "healthy",
		},
		{
			name:       "live",
			path:       "/live",
			cfg:        Config{PostgresDB: fakePinger{}, RedisClient: fakeRedis{}},
			wantStatus: http.StatusOK,
			wantField:  "alive",
		},
		{
			name:       "ready",
			path:       "/ready",
			cfg:        Config{PostgresDB: fakePinger{}, RedisClient: fakeRedis{}, KafkaProducer: fakeKafka{}},
			wantStatus: http.StatusOK,
			wantField:  "ready",
		},
		{
			name:       "postgres down",
			path:       "/ready",
			cfg:        Config{PostgresDB: fakePinger{err: down}, RedisClient: fakeRedis{}},
			wantStatus: http.StatusServiceUnavailable,
			wantField:  "not ready",
		},
		{
			name:       "redis down",
			path:       "/ready",
			cfg:        Config{PostgresDB: fakePinger{}, RedisClient: fakeRedis{err: down}},
			wantStatus: http.StatusServiceUnavailable,
			wantField:  "not ready",
		},
		{
			name:       "kafka down",
			path:       "/ready",
			cfg:        Config{PostgresDB: fakePinger{}, RedisClient: fakeRedis{}, KafkaProducer: fakeKafka{err: down}},
			wantStatus: http.StatusServiceUnavailable,
			wantField:  "not ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.cfg)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			srv.gin.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body struct {
				Data   map[string]any `json:"data"`
				Errors map[string]any `json:"errors"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			payload := body.Data
			if payload == nil {
				payload = body.Errors
			}
			if got := payload["status"]; got != tt.wantField {
				t.Errorf("status field = %v, want %q", got, tt.wantField)
			}
		})
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080, RedisClient: fakeRedis{}})
	if err == nil {
		t.Error("New() without postgres should fail")
	}
	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, PostgresDB: fakePinger{}, RedisClient: fakeRedis{}})
	if err == nil {
		t.Error("New() without port should fail")
	}
}
