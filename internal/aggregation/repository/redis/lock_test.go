package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/pkg/log"
)

// memRedis is an in-memory IRedis covering what the lock uses.
type memRedis struct {
	mu        sync.Mutex
	data      map[string]string
	setErr    error
	evalErr   error
	refreshed []int64
}

func newMemRedis() *memRedis { return &memRedis{data: map[string]string{}} }

func (m *memRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value.(string)
	return nil
}

func (m *memRedis) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return false, m.setErr
	}
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value.(string)
	return true, nil
}

func (m *memRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memRedis) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memRedis) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *memRedis) TTL(ctx context.Context, key string) (time.Duration, error) {
	return time.Minute, nil
}

// Eval emulates the compare-and-delete release and compare-and-expire refresh scripts.
func (m *memRedis) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.evalErr != nil {
		return nil, m.evalErr
	}
	if m.data[keys[0]] != args[0].(string) {
		return int64(0), nil
	}
	switch script {
	case releaseScript:
		delete(m.data, keys[0])
	case refreshScript:
		m.refreshed = append(m.refreshed, args[1].(int64))
	}
	return int64(1), nil
}

func (m *memRedis) Close() error                   { return nil }
func (m *memRedis) Ping(ctx context.Context) error { return nil }
func (m *memRedis) GetClient() *goredis.Client     { return nil }

func TestLock_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	mem := newMemRedis()
	lock := New(mem, log.NewNop())

	token, err := lock.Acquire(ctx, "biz-1", "google", time.Minute)
	if err != nil || token == "" {
		t.Fatalf("Acquire() = %q, %v, want token", token, err)
	}

	if _, err := lock.Acquire(ctx, "biz-1", "google", time.Minute); !errors.Is(err, repo.ErrLockHeld) {
		t.Errorf("second Acquire() error = %v, want ErrLockHeld", err)
	}
	if _, err := lock.Acquire(ctx, "biz-2", "google", time.Minute); err != nil {
		t.Errorf("Acquire() on other business error = %v, want nil", err)
	}

	if err := lock.Release(ctx, "biz-1", "google", token); err != nil {
		t.Fatalf("Release() unexpected error: %v", err)
	}
	if _, err := lock.Acquire(ctx, "biz-1", "google", time.Minute); err != nil {
		t.Errorf("Acquire() after release error = %v, want nil", err)
	}
}

func TestLock_ReleaseWithStaleToken(t *testing.T) {
	ctx := context.Background()
	mem := newMemRedis()
	lock := New(mem, log.NewNop())

	if _, err := lock.Acquire(ctx, "biz-1", "google", time.Minute); err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}
	if err := lock.Release(ctx, "biz-1", "google", "someone-else"); err != nil {
		t.Fatalf("Release() unexpected error: %v", err)
	}
	if ok, _ := mem.Exists(ctx, lockKey("biz-1", "google")); !ok {
		t.Errorf("lock removed by a stale token")
	}
}

func TestLock_BackendError(t *testing.T) {
	mem := newMemRedis()
	mem.setErr = errors.New("connection refused")
	lock := New(mem, log.NewNop())

	_, err := lock.Acquire(context.Background(), "biz-1", "google", time.Minute)
	if !errors.Is(err, repo.ErrFailedToAcquireLock) {
		t.Errorf("Acquire() error = %v, want ErrFailedToAcquireLock", err)
	}
}

func TestLock_ScopedByPlatform(t *testing.T) {
	ctx := context.Background()
	lock := New(newMemRedis(), log.NewNop())

	if _, err := lock.Acquire(ctx, "biz-1", "google", time.Minute); err != nil {
		t.Fatalf("Acquire(google) unexpected error: %v", err)
	}
	if _, err := lock.Acquire(ctx, "biz-1", "facebook", time.Minute); err != nil {
		t.Errorf("Acquire(facebook) error = %v, want nil for another platform", err)
	}
	if lockKey("biz-1", "google") == lockKey("biz-1", "facebook") {
		t.Errorf("lock keys collide across platforms")
	}
}

func TestLock_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("owner extends the ttl", func(t *testing.T) {
		mem := newMemRedis()
		lock := New(mem, log.NewNop())
		token, err := lock.Acquire(ctx, "biz-1", "google", time.Minute)
		if err != nil {
			t.Fatalf("Acquire() unexpected error: %v", err)
		}

		if err := lock.Refresh(ctx, "biz-1", "google", token, 2*time.Minute); err != nil {
			t.Fatalf("Refresh() unexpected error: %v", err)
		}
		if len(mem.refreshed) != 1 || mem.refreshed[0] != (2*time.Minute).Milliseconds() {
			t.Errorf("refreshed = %v, want [120000]", mem.refreshed)
		}
	})

	t.Run("expired lock is lost", func(t *testing.T) {
		mem := newMemRedis()
		lock := New(mem, log.NewNop())
		token, err := lock.Acquire(ctx, "biz-1", "google", time.Minute)
		if err != nil {
			t.Fatalf("Acquire() unexpected error: %v", err)
		}
		_ = mem.Delete(ctx, lockKey("biz-1", "google"))

		if err := lock.Refresh(ctx, "biz-1", "google", token, time.Minute); !errors.Is(err, repo.ErrLockLost) {
			t.Errorf("Refresh() error = %v, want ErrLockLost", err)
		}
	})

	t.Run("lock taken over by another run", func(t *testing.T) {
		mem := newMemRedis()
		lock := New(mem, log.NewNop())
		token, err := lock.Acquire(ctx, "biz-1", "google", time.Minute)
		if err != nil {
			t.Fatalf("Acquire() unexpected error: %v", err)
		}
		_ = mem.Set(ctx, lockKey("biz-1", "google"), "other-run", time.Minute)

		if err := lock.Refresh(ctx, "biz-1", "google", token, time.Minute); !errors.Is(err, repo.ErrLockLost) {
			t.Errorf("Refresh() error = %v, want ErrLockLost", err)
		}
		if len(mem.refreshed) != 0 {
			t.Errorf("ttl of another run's lock was extended")
		}
	})

	t.Run("backend error", func(t *testing.T) {
		mem := newMemRedis()
		mem.evalErr = errors.New("connection refused")
		lock := New(mem, log.NewNop())

		if err := lock.Refresh(ctx, "biz-1", "google", "token", time.Minute); !errors.Is(err, repo.ErrFailedToRefreshLock) {
			t.Errorf("Refresh() error = %v, want ErrFailedToRefreshLock", err)
		}
	})
}
