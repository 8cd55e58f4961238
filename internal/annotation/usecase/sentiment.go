package usecase

import (
	"math"

	"analytics-srv/internal/model"
)

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// blendSentiment averages the classifier score with the rating-derived score when a rating is present.
func blendSentiment(raw float64, rating *float64) float64 {
	score := clamp(raw, -1, 1)
	if rating != nil {
		fromRating := clamp((*rating-3)/2, -1, 1)
		score = (score + fromRating) / 2
	}
	return round2(score)
}

func categorize(score float64) model.Sentiment {
	switch {
	case score > positiveThreshold:
		return model.SentimentPositive
	case score < negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// avoid -0 in JSON
		return 0
	}
	return r
}
