package poller

import (
	"context"
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/pkg/log"
)

const (
	defaultWorkers        = 4
	defaultInterval       = 15 * time.Minute
	defaultRetryBaseDelay = 2 * time.Second
)

type implPoller struct {
	l          log.Logger
	businesses BusinessLister
	uc         aggregation.UseCase
	cfg        Config
	sleep      func(ctx context.Context, d time.Duration) error
}

// New creates a poller. Zero config values fall back to defaults.
func New(l log.Logger, businesses BusinessLister, uc aggregation.UseCase, cfg Config) Poller {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return &implPoller{
		l:          l,
		businesses: businesses,
		uc:         uc,
		cfg:        cfg,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
