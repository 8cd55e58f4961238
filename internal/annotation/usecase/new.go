package usecase

import (
	"analytics-srv/internal/annotation"
	"analytics-srv/pkg/log"
)

// implUseCase implements the annotation.UseCase interface
type implUseCase struct {
	l          log.Logger
	classifier annotation.Classifier
}

// New creates a new annotation usecase
func New(l log.Logger, classifier annotation.Classifier) annotation.UseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
	}
}
