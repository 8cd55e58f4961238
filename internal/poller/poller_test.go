package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/log"
)

type fakeLister struct {
	businesses []model.Business
	err        error
}

func (f *fakeLister) ListBusinesses(context.Context) ([]model.Business, error) {
	return f.businesses, f.err
}

// fakeRunner returns the queued errors of a business in order, then nil.
type fakeRunner struct {
	mu     sync.Mutex
	errs   map[string][]error
	always map[string]error
	calls  map[string]int
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		errs:   map[string][]error{},
		always: map[string]error{},
		calls:  map[string]int{},
	}
}

func (f *fakeRunner) Run(_ context.Context, ip aggregation.RunInput) (aggregation.RunOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[ip.BusinessID]++
	if err, ok := f.always[ip.BusinessID]; ok {
		return aggregation.RunOutput{State: aggregation.StateFailed}, err
	}
	if q := f.errs[ip.BusinessID]; len(q) > 0 {
		f.errs[ip.BusinessID] = q[1:]
		return aggregation.RunOutput{State: aggregation.StateFailed}, q[0]
	}
	return aggregation.RunOutput{State: aggregation.StateDone}, nil
}

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	return nil
}

func newTestPoller(lister BusinessLister, runner aggregation.UseCase, cfg Config, rec *sleepRecorder) *implPoller {
	p := New(log.NewNop(), lister, runner, cfg).(*implPoller)
	p.sleep = rec.sleep
	return p
}

func TestRunOnce(t *testing.T) {
	transient := errors.New("connection refused")
	lister := &fakeLister{businesses: []model.Business{
		{ID: "ok", Platform: "google"},
		{ID: "flaky", Platform: "google"},
		{ID: "empty", Platform: "google"},
		{ID: "locked", Platform: "google"},
		{ID: "broken", Platform: "google"},
	}}

	runner := newFakeRunner()
	runner.errs["flaky"] = []error{transient, transient}
	runner.always["empty"] = aggregation.ErrNoData
	runner.always["locked"] = aggregation.ErrRunInProgress
	runner.always["broken"] = aggregation.ErrPersistenceFailed

	rec := &sleepRecorder{}
	p := newTestPoller(lister, runner, Config{Workers: 2, MaxRetries: 3, RetryBaseDelay: 10 * time.Millisecond}, rec)

	out, err := p.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce() error = %v", err)
	}

	if out.Businesses != 5 || out.Succeeded != 2 || out.Skipped != 2 || out.Failed != 1 {
		t.Errorf("RunOnce() = %+v, want 5 businesses, 2 succeeded, 2 skipped, 1 failed", out)
	}

	wantCalls := map[string]int{"ok": 1, "flaky": 3, "empty": 1, "locked": 1, "broken": 4}
	for id, want := range wantCalls {
		if got := runner.calls[id]; got != want {
			t.Errorf("calls[%s] = %d, want %d", id, got, want)
		}
	}

	// flaky sleeps 10ms, 20ms; broken sleeps 10ms, 20ms, 40ms
	if len(rec.delays) != 5 {
		t.Fatalf("sleeps = %v, want 5", rec.delays)
	}
	var total time.Duration
	for _, d := range rec.delays {
		total += d
	}
	if want := 100 * time.Millisecond; total != want {
		t.Errorf("total backoff = %s, want %s", total, want)
	}
}

func TestRunOnceListFailure(t *testing.T) {
	p := newTestPoller(&fakeLister{err: errors.New("db down")}, newFakeRunner(), Config{}, &sleepRecorder{})

	_, err := p.RunOnce(context.Background())
	if !errors.Is(err, ErrListBusinessesFailed) {
		t.Errorf("RunOnce() error = %v, want %v", err, ErrListBusinessesFailed)
	}
}

func TestRunWithRetryCancelled(t *testing.T) {
	runner := newFakeRunner()
	runner.always["b"] = errors.New("timeout")

	p := New(log.NewNop(), &fakeLister{}, runner, Config{MaxRetries: 5, RetryBaseDelay: time.Hour}).(*implPoller)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := p.runWithRetry(ctx, model.Business{ID: "b", Platform: "google"}); got != runFailed {
		t.Errorf("runWithRetry() = %v, want runFailed", got)
	}
	if runner.calls["b"] != 1 {
		t.Errorf("calls = %d, want 1", runner.calls["b"])
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	runner := newFakeRunner()
	lister := &fakeLister{businesses: []model.Business{{ID: "ok", Platform: "google"}}}
	p := newTestPoller(lister, runner, Config{Interval: time.Hour}, &sleepRecorder{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Start(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		runner.mu.Lock()
		n := runner.calls["ok"]
		runner.mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first cycle did not run")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

func TestNewDefaults(t *testing.T) {
	p := New(log.NewNop(), &fakeLister{}, newFakeRunner(), Config{MaxRetries: -1}).(*implPoller)

	if p.cfg.Workers != defaultWorkers || p.cfg.Interval != defaultInterval || p.cfg.RetryBaseDelay != defaultRetryBaseDelay {
		t.Errorf("cfg = %+v, want defaults", p.cfg)
	}
	if p.cfg.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, want 0", p.cfg.MaxRetries)
	}
}
