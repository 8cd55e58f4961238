package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/log"
)

type runStatus int

const (
	runSucceeded runStatus = iota
	runSkipped
	runFailed
)

// Start - Poll until ctx is cancelled
func (p *implPoller) Start(ctx context.Context) error {
	p.l.Infof(ctx, "poller.Start: Polling every %s with %d workers", p.cfg.Interval, p.cfg.Workers)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := p.RunOnce(ctx); err != nil {
			p.l.Errorf(ctx, "poller.Start: Cycle failed: %v", err)
		}

		select {
		case <-ctx.Done():
			p.l.Infof(ctx, "poller.Start: Stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce - One cycle over every business, bounded by the worker limit
func (p *implPoller) RunOnce(ctx context.Context) (CycleOutput, error) {
	startTime := time.Now()
	ctx = log.WithTraceID(ctx, uuid.NewString())

	// Step 1: List businesses
	businesses, err := p.businesses.ListBusinesses(ctx)
	if err != nil {
		return CycleOutput{}, fmt.Errorf("%w: %w", ErrListBusinessesFailed, err)
	}

	// Step 2: Fan out runs
	var (
		out CycleOutput
		mu  sync.Mutex
	)
	out.Businesses = len(businesses)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for _, b := range businesses {
		g.Go(func() error {
			status := p.runWithRetry(gctx, b)

			mu.Lock()
			defer mu.Unlock()

			switch status {
			case runSucceeded:
				out.Succeeded++
			case runSkipped:
				out.Skipped++
			case runFailed:
				out.Failed++
			}
			return nil
		})
	}

	_ = g.Wait()

	out.Duration = time.Since(startTime)
	p.l.Infof(ctx, "poller.RunOnce: businesses=%d succeeded=%d skipped=%d failed=%d duration=%s",
		out.Businesses, out.Succeeded, out.Skipped, out.Failed, out.Duration)

	return out, nil
}

// runWithRetry - Run one business with exponential backoff
func (p *implPoller) runWithRetry(ctx context.Context, b model.Business) runStatus {
	input := aggregation.RunInput{BusinessID: b.ID, Platform: b.Platform}

	for attempt := 0; ; attempt++ {
		_, err := p.uc.Run(ctx, input)
		if err == nil {
			return runSucceeded
		}

		if errors.Is(err, aggregation.ErrNoData) || errors.Is(err, aggregation.ErrRunInProgress) {
			p.l.Debugf(ctx, "poller.runWithRetry: Skipping %s/%s: %v", b.ID, b.Platform, err)
			return runSkipped
		}
		if errors.Is(err, aggregation.ErrInvalidBusiness) {
			p.l.Warnf(ctx, "poller.runWithRetry: Invalid business %s/%s: %v", b.ID, b.Platform, err)
			return runFailed
		}

		if attempt >= p.cfg.MaxRetries {
			p.l.Errorf(ctx, "poller.runWithRetry: Giving up on %s/%s after %d attempts: %v", b.ID, b.Platform, attempt+1, err)
			return runFailed
		}

		delay := p.cfg.RetryBaseDelay << attempt
		p.l.Warnf(ctx, "poller.runWithRetry: Run for %s/%s failed (attempt %d), retrying in %s: %v", b.ID, b.Platform, attempt+1, delay, err)
		if err := p.sleep(ctx, delay); err != nil {
			return runFailed
		}
	}
}
