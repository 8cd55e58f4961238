package usecase

import (
	"strconv"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/platform"
)

// Engagement level thresholds
const (
	highLikes    = 5
	highComments = 2
)

const bucketUnrated = "unrated"

// computeDistribution breaks the full review set into buckets per dimension.
func computeDistribution(reviews []model.Review, p platform.Platform, now time.Time) model.DistributionSnapshot {
	d := model.DistributionSnapshot{
		TotalReviews: len(reviews),
		Rating:       ratingBuckets(p),
	}

	var categorical map[string]int
	if dim := p.Dimension(); dim != nil {
		categorical = make(map[string]int, len(dim.Buckets))
		for _, name := range dim.BucketNames() {
			categorical[name] = 0
		}
	}

	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)
	sixMonthsAgo := now.AddDate(0, 0, -180)

	var high, low int
	for _, r := range reviews {
		// Rating / recommendation
		switch p.Kind() {
		case platform.KindRating:
			if v, ok := p.Rating(r); ok {
				d.Rating[strconv.Itoa(ratingBucket(v))]++
			} else {
				d.Rating[bucketUnrated]++
			}
		case platform.KindRecommend:
			if p.Recommended(r) {
				d.Rating[model.BucketRecommended]++
			} else {
				d.Rating[model.BucketNotRecommended]++
			}
		}

		// Engagement level; medium is derived below
		switch {
		case r.Likes > highLikes || r.Comments > highComments:
			high++
		case r.Likes == 0 && r.Comments == 0:
			low++
		}

		// Content
		addPresence(&d.Photos, r.Photos > 0)
		addPresence(&d.Tags, r.HasTags())
		addPresence(&d.Replies, r.HasReply())

		// Recency, future-dated reviews land in the last week
		switch {
		case !r.PublishedAt.Before(weekAgo):
			d.Recency.LastWeek++
		case !r.PublishedAt.Before(monthAgo):
			d.Recency.LastMonth++
		case !r.PublishedAt.Before(sixMonthsAgo):
			d.Recency.LastSixMonths++
		default:
			d.Recency.Older++
		}

		// Platform dimension
		if categorical != nil {
			if bucket, ok := p.Category(r); ok {
				categorical[bucket]++
			}
		}
	}

	d.EngagementLevel = model.EngagementLevelBuckets{
		High:   high,
		Low:    low,
		Medium: len(reviews) - high - low,
	}

	if categorical != nil {
		d.Categorical = &model.CategoricalBuckets{
			Dimension: p.Dimension().Name,
			Counts:    categorical,
		}
	}

	return d
}

func ratingBuckets(p platform.Platform) map[string]int {
	if p.Kind() == platform.KindRecommend {
		return map[string]int{
			model.BucketRecommended:    0,
			model.BucketNotRecommended: 0,
		}
	}
	buckets := make(map[string]int, 5)
	for i := 1; i <= 5; i++ {
		buckets[strconv.Itoa(i)] = 0
	}
	return buckets
}

func addPresence(b *model.PresenceBuckets, present bool) {
	if present {
		b.With++
		return
	}
	b.Without++
}
