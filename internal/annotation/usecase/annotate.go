package usecase

import (
	"context"
	"fmt"
	"strings"

	"analytics-srv/internal/annotation"
	"analytics-srv/internal/model"
)

// Annotate computes sentiment, keywords, topics and urgency of one review text.
func (uc *implUseCase) Annotate(ctx context.Context, text string, rating *float64) (model.Annotation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.NeutralAnnotation(), nil
	}

	raw, err := uc.classifier.Score(text)
	if err != nil {
		uc.l.Warnf(ctx, "annotation.usecase.Annotate: classifier failed: %v", err)
		return model.NeutralAnnotation(), fmt.Errorf("%w: %v", annotation.ErrClassifierFailed, err)
	}

	score := blendSentiment(raw, rating)
	tokens := tokenize(text)

	return model.Annotation{
		SentimentScore: score,
		Category:       categorize(score),
		Keywords:       extractKeywords(tokens, splitSentences(text)),
		Topics:         extractTopics(tokens),
		Urgency:        urgency(text, score, rating),
	}, nil
}
