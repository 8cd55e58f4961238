package poller

import (
	"context"

	"analytics-srv/internal/model"
)

//go:generate mockery --name Poller
type Poller interface {
	// Start runs a cycle immediately and then every interval until ctx is done.
	Start(ctx context.Context) error
	// RunOnce recomputes analytics for every known business.
	RunOnce(ctx context.Context) (CycleOutput, error)
}

// BusinessLister lists the (business, platform) pairs that have reviews.
type BusinessLister interface {
	ListBusinesses(ctx context.Context) ([]model.Business, error)
}
