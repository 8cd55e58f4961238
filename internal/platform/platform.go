package platform

import (
	"strings"

	"analytics-srv/internal/model"
)

// Kind tells how a platform expresses the reviewer's verdict.
type Kind string

const (
	KindRating    Kind = "rating"
	KindRecommend Kind = "recommend"
)

// Counters are the raw engagement fields of an ingested review line.
type Counters struct {
	Likes        int
	Comments     int
	HelpfulVotes int
	Photos       int
}

// Engagement is the normalized engagement of one review.
type Engagement struct {
	Likes    int
	Comments int
	Photos   int
}

// Platform is the small capability set the aggregation engine needs from a review source.
type Platform interface {
	Name() string
	Kind() Kind
	// Rating returns the numeric rating, false on recommend platforms or when absent.
	Rating(r model.Review) (float64, bool)
	// Recommended returns the recommend flag. A missing flag counts as not recommended.
	Recommended(r model.Review) bool
	// Dimension returns the platform-specific categorical dimension, nil when there is none.
	Dimension() *Dimension
	// Category returns the bucket of the review in Dimension, false when unmatched.
	Category(r model.Review) (string, bool)
	// Engagement maps raw counters to likes/comments/photos.
	Engagement(c Counters) Engagement
}

type adapter struct {
	name       string
	kind       Kind
	dimension  *Dimension
	source     func(r model.Review) string
	engagement func(c Counters) Engagement
}

func (a adapter) Name() string { return a.name }

func (a adapter) Kind() Kind { return a.kind }

func (a adapter) Rating(r model.Review) (float64, bool) {
	if a.kind != KindRating || r.Rating == nil {
		return 0, false
	}
	return *r.Rating, true
}

func (a adapter) Recommended(r model.Review) bool {
	return r.Recommended != nil && *r.Recommended
}

func (a adapter) Dimension() *Dimension { return a.dimension }

func (a adapter) Category(r model.Review) (string, bool) {
	if a.dimension == nil || a.source == nil {
		return "", false
	}
	return a.dimension.Match(a.source(r))
}

func (a adapter) Engagement(c Counters) Engagement {
	if a.engagement == nil {
		return Engagement{Likes: c.Likes, Comments: c.Comments, Photos: c.Photos}
	}
	return a.engagement(c)
}

// Bucket is one value of a categorical dimension and the keywords that select it.
type Bucket struct {
	Name     string
	Keywords []string
}

// Dimension is a platform-specific categorical breakdown such as trip type.
type Dimension struct {
	Name    string
	Buckets []Bucket
}

// Match returns the first bucket with a keyword contained in value, case-insensitively.
func (d Dimension) Match(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}
	for _, b := range d.Buckets {
		for _, kw := range b.Keywords {
			if strings.Contains(value, kw) {
				return b.Name, true
			}
		}
	}
	return "", false
}

// BucketNames returns the bucket names in declaration order.
func (d Dimension) BucketNames() []string {
	names := make([]string, 0, len(d.Buckets))
	for _, b := range d.Buckets {
		names = append(names, b.Name)
	}
	return names
}
