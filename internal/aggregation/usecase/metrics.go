package usecase

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"analytics-srv/internal/model"
	"analytics-srv/internal/platform"
)

const (
	// topTermLimit is the size of every per-window frequency table.
	topTermLimit = 10
	// minTermLength drops tokens of this length or shorter from frequency tables.
	minTermLength = 2
	// approvalRating is the lowest rating counted as approval on rating platforms.
	approvalRating = 4.0
)

// computeMetrics summarizes the reviews of one window. An empty window yields zero counts and absent averages.
func computeMetrics(reviews []model.Review, p platform.Platform) model.PeriodMetrics {
	m := model.PeriodMetrics{
		ReviewCount: len(reviews),
		TopKeywords: []model.TermCount{},
		TopTopics:   []model.TermCount{},
		TopTags:     []model.TermCount{},
	}
	if len(reviews) == 0 {
		return m
	}

	var (
		ratingSum     float64
		rated         int
		approved      int
		sentimentSum  float64
		sentimentN    int
		latencyHours  float64
		latencyN      int
		qualitySum    float64
		keywordCounts = make(map[string]int)
		topicCounts   = make(map[string]int)
		tagCounts     = make(map[string]int)
	)

	for _, r := range reviews {
		// Verdict
		switch p.Kind() {
		case platform.KindRating:
			if v, ok := p.Rating(r); ok {
				ratingSum += v
				rated++
				m.RatingHistogram.Add(ratingBucket(v))
				if v >= approvalRating {
					approved++
				}
			} else {
				m.RatingHistogram.Unrated++
			}
		case platform.KindRecommend:
			if p.Recommended(r) {
				m.RecommendedCount++
			} else {
				m.NotRecommendedCount++
			}
		}

		// Engagement
		m.TotalLikes += r.Likes
		m.TotalComments += r.Comments
		m.TotalPhotos += r.Photos

		// Sentiment
		category := model.SentimentNeutral
		if r.Annotation != nil {
			category = r.Annotation.Category
			sentimentSum += r.Annotation.SentimentScore
			sentimentN++
			if r.Annotation.Urgency >= model.UrgentThreshold {
				m.UrgentCount++
			}
			for _, kw := range r.Annotation.Keywords {
				keywordCounts[strings.ToLower(kw)]++
			}
			for _, t := range r.Annotation.Topics {
				topicCounts[strings.ToLower(t)]++
			}
		}
		switch category {
		case model.SentimentPositive:
			m.PositiveCount++
		case model.SentimentNegative:
			m.NegativeCount++
		default:
			m.NeutralCount++
		}

		for _, tag := range r.AllTags() {
			if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
				tagCounts[tag]++
			}
		}

		// Owner responses
		if r.HasReply() {
			m.ResponseCount++
			if r.RepliedAt != nil && r.RepliedAt.After(r.PublishedAt) {
				latencyHours += r.RepliedAt.Sub(r.PublishedAt).Hours()
				latencyN++
			}
		}

		qualitySum += reviewQuality(r)
	}

	n := float64(len(reviews))

	if rated > 0 {
		avg := round2(ratingSum / float64(rated))
		m.AverageRating = &avg
		m.ApprovalRate = round2(float64(approved) / float64(rated) * 100)
	}
	if p.Kind() == platform.KindRecommend {
		rate := round2(float64(m.RecommendedCount) / n * 100)
		m.RecommendationRate = &rate
		m.ApprovalRate = rate
	}

	m.TotalEngagement = m.TotalLikes + m.TotalComments
	m.AvgLikesPerReview = round2(float64(m.TotalLikes) / n)
	m.AvgCommentsPerReview = round2(float64(m.TotalComments) / n)
	m.AvgPhotosPerReview = round2(float64(m.TotalPhotos) / n)
	m.AvgEngagementPerReview = round2(float64(m.TotalEngagement) / n)

	if sentimentN > 0 {
		avg := round2(sentimentSum / float64(sentimentN))
		m.AverageSentiment = &avg
	}

	m.ResponseRate = round2(float64(m.ResponseCount) / n * 100)
	if latencyN > 0 {
		avg := round2(latencyHours / float64(latencyN))
		m.AvgResponseHours = &avg
	}

	m.AvgReviewQuality = round2(qualitySum / n)

	m.TopKeywords = topTerms(keywordCounts, topTermLimit)
	m.TopTopics = topTerms(topicCounts, topTermLimit)
	m.TopTags = topTerms(tagCounts, topTermLimit)

	return m
}

// ratingBucket rounds a rating into 1..5.
func ratingBucket(rating float64) int {
	b := int(math.Round(rating))
	if b < 1 {
		return 1
	}
	if b > 5 {
		return 5
	}
	return b
}

// topTerms sorts by count descending then term ascending, dropping terms of minTermLength runes or fewer.
func topTerms(counts map[string]int, limit int) []model.TermCount {
	terms := make([]model.TermCount, 0, len(counts))
	for term, count := range counts {
		if utf8.RuneCountInString(term) <= minTermLength {
			continue
		}
		terms = append(terms, model.TermCount{Term: term, Count: count})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}
