package poller

import (
	"errors"
	"time"
)

// Config tunes the poller.
type Config struct {
	Workers        int
	Interval       time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// CycleOutput summarizes one poll cycle.
type CycleOutput struct {
	Businesses int
	Succeeded  int
	Skipped    int
	Failed     int
	Duration   time.Duration
}

var ErrListBusinessesFailed = errors.New("poller: failed to list businesses")
