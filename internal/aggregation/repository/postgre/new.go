package postgre

import (
	"database/sql"

	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/pkg/log"
)

// implRepository implements repository.Repository interface
type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL repository for the aggregation domain
func New(db *sql.DB, l log.Logger) repo.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
