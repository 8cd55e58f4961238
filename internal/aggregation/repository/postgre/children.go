package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/internal/model"
)

// ReplaceChildren - Delete all keyword/topic/tag rows of one owner and insert the new sets
func (r *implRepository) ReplaceChildren(ctx context.Context, opt repo.ReplaceChildrenOptions) error {
	if opt.OwnerID == "" || opt.OwnerKind == "" {
		return repo.ErrInvalidInput
	}

	sets := []struct {
		table string
		terms []model.TermCount
	}{
		{table: tableKeywords, terms: opt.Keywords},
		{table: tableTopics, terms: opt.Topics},
		{table: tableTags, terms: opt.Tags},
	}

	err := r.execInTx(ctx, func(tx *sql.Tx) error {
		for _, s := range sets {
			if err := replaceChildSet(ctx, tx, s.table, opt, s.terms); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "aggregation.repository.postgre.ReplaceChildren: Failed to replace children of %s %s (code=%s): %v",
			opt.OwnerKind, opt.OwnerID, pqCode(err), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToReplace, err)
	}

	return nil
}

func replaceChildSet(ctx context.Context, tx *sql.Tx, table string, opt repo.ReplaceChildrenOptions, terms []model.TermCount) error {
	if _, err := tx.ExecContext(ctx, deleteChildrenQuery(table), string(opt.OwnerKind), opt.OwnerID); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if len(terms) == 0 {
		return nil
	}

	ids, names, counts, ranks := buildChildArrays(terms)
	if _, err := tx.ExecContext(ctx, insertChildrenQuery(table), ids, string(opt.OwnerKind), opt.OwnerID, names, counts, ranks); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}
