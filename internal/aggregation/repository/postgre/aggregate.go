package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "analytics-srv/internal/aggregation/repository"
)

// UpsertAggregates - Upsert overview, distribution and every period row in one transaction
func (r *implRepository) UpsertAggregates(ctx context.Context, opt repo.UpsertAggregatesOptions) (repo.AggregateIDs, error) {
	if opt.BusinessID == "" {
		return repo.AggregateIDs{}, repo.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.postgre.UpsertAggregates: Failed to begin transaction: %v", err)
		return repo.AggregateIDs{}, fmt.Errorf("%w: %w", repo.ErrFailedToBegin, err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := repo.AggregateIDs{PeriodIDs: make(map[int]string, len(opt.Periods))}

	// Overview first, it is the root record of the business
	if err := tx.QueryRowContext(ctx, upsertOverviewQuery, buildOverviewArgs(opt)...).Scan(&ids.OverviewID); err != nil {
		r.l.Errorf(ctx, "aggregation.repository.postgre.UpsertAggregates: Failed to upsert overview (code=%s): %v", pqCode(err), err)
		return repo.AggregateIDs{}, fmt.Errorf("%w: overview: %w", repo.ErrFailedToUpsert, err)
	}

	distArgs, err := buildDistributionArgs(opt)
	if err != nil {
		return repo.AggregateIDs{}, fmt.Errorf("%w: distribution: %w", repo.ErrInvalidInput, err)
	}
	var distributionID string
	if err := tx.QueryRowContext(ctx, upsertDistributionQuery, distArgs...).Scan(&distributionID); err != nil {
		r.l.Errorf(ctx, "aggregation.repository.postgre.UpsertAggregates: Failed to upsert distribution (code=%s): %v", pqCode(err), err)
		return repo.AggregateIDs{}, fmt.Errorf("%w: distribution: %w", repo.ErrFailedToUpsert, err)
	}

	for _, m := range opt.Periods {
		args, err := buildPeriodArgs(opt, m)
		if err != nil {
			return repo.AggregateIDs{}, fmt.Errorf("%w: period %d: %w", repo.ErrInvalidInput, m.PeriodKey, err)
		}
		var id string
		if err := tx.QueryRowContext(ctx, upsertPeriodQuery, args...).Scan(&id); err != nil {
			r.l.Errorf(ctx, "aggregation.repository.postgre.UpsertAggregates: Failed to upsert period %d (code=%s): %v", m.PeriodKey, pqCode(err), err)
			return repo.AggregateIDs{}, fmt.Errorf("%w: period %d: %w", repo.ErrFailedToUpsert, m.PeriodKey, err)
		}
		ids.PeriodIDs[m.PeriodKey] = id
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "aggregation.repository.postgre.UpsertAggregates: Failed to commit: %v", err)
		return repo.AggregateIDs{}, fmt.Errorf("%w: %w", repo.ErrFailedToCommit, err)
	}

	return ids, nil
}

// execInTx runs fn inside a transaction and commits when it returns nil.
func (r *implRepository) execInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", repo.ErrFailedToBegin, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", repo.ErrFailedToCommit, err)
	}
	return nil
}
