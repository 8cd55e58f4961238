package usecase

import (
	"analytics-srv/internal/review"
	repo "analytics-srv/internal/review/repository"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/minio"
)

type implUseCase struct {
	l       log.Logger
	repo    repo.Repository
	storage minio.FileDownloader
}

// New creates a new review usecase
func New(l log.Logger, repo repo.Repository, storage minio.FileDownloader) review.UseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		storage: storage,
	}
}
