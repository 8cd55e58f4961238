package usecase

import (
	"time"

	"analytics-srv/internal/aggregation"
	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/internal/annotation"
	"analytics-srv/pkg/log"
)

// implUseCase implements the aggregation.UseCase interface
type implUseCase struct {
	l         log.Logger
	reviews   aggregation.ReviewSource
	annotator annotation.UseCase
	repo      repo.Repository
	locker    repo.LockRepository
	producer  aggregation.Producer
	lockTTL   time.Duration
	now       func() time.Time
}

// New creates a new aggregation usecase. producer may be nil when result events are not wanted.
func New(
	l log.Logger,
	reviews aggregation.ReviewSource,
	annotator annotation.UseCase,
	repo repo.Repository,
	locker repo.LockRepository,
	producer aggregation.Producer,
	lockTTL time.Duration,
) aggregation.UseCase {
	return &implUseCase{
		l:         l,
		reviews:   reviews,
		annotator: annotator,
		repo:      repo,
		locker:    locker,
		producer:  producer,
		lockTTL:   lockTTL,
		now:       time.Now,
	}
}
