package model

import (
	"strings"
	"time"
)

// Review is one normalized platform review. It is never mutated during an aggregation run.
type Review struct {
	ID         string
	BusinessID string
	Platform   string
	ExternalID string

	// Rating is 1..5 on rating platforms, nil on recommend-only platforms.
	Rating *float64
	// Recommended is set on recommend-only platforms.
	Recommended *bool

	Text        string
	PublishedAt time.Time

	// Owner reply
	ReplyText string
	RepliedAt *time.Time

	// Engagement counters
	Likes    int
	Comments int
	Photos   int

	// Platform-specific categorical values
	TripType  string
	GuestType string
	Tags      []string

	Annotation *Annotation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasReply reports whether the business owner answered the review.
func (r Review) HasReply() bool {
	return strings.TrimSpace(r.ReplyText) != "" || r.RepliedAt != nil
}

// Engagement is likes plus comments.
func (r Review) Engagement() int {
	return r.Likes + r.Comments
}

// HasTags reports whether the review carries any categorical tag.
func (r Review) HasTags() bool {
	return len(r.Tags) > 0 || r.TripType != "" || r.GuestType != ""
}

// AllTags returns Tags plus the trip/guest type values, in that order.
func (r Review) AllTags() []string {
	tags := make([]string, 0, len(r.Tags)+2)
	tags = append(tags, r.Tags...)
	if r.TripType != "" {
		tags = append(tags, r.TripType)
	}
	if r.GuestType != "" {
		tags = append(tags, r.GuestType)
	}
	return tags
}

// Business identifies one (business, platform) pair with stored reviews.
type Business struct {
	ID           string
	Platform     string
	ReviewCount  int
	LastReviewAt *time.Time
}
