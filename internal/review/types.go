package review

import "time"

// IngestInput - Input for Ingest
type IngestInput struct {
	BusinessID string
	Platform   string
	FileURL    string // s3://bucket/object.jsonl
}

// IngestOutput - Output of Ingest
type IngestOutput struct {
	Received   int
	Stored     int
	Skipped    int
	Duplicates int
	Duration   time.Duration
}

// BatchRecord is one line of a review batch file.
type BatchRecord struct {
	ExternalID   string     `json:"external_id"`
	Rating       *float64   `json:"rating"`
	Recommended  *bool      `json:"recommended"`
	Text         string     `json:"text"`
	PublishedAt  time.Time  `json:"published_at"`
	ReplyText    string     `json:"reply_text"`
	RepliedAt    *time.Time `json:"replied_at"`
	Likes        int        `json:"likes"`
	Comments     int        `json:"comments"`
	HelpfulVotes int        `json:"helpful_votes"`
	Photos       int        `json:"photos"`
	TripType     string     `json:"trip_type"`
	GuestType    string     `json:"guest_type"`
	Tags         []string   `json:"tags"`
}

const (
	// MaxLineSize bounds one JSONL line.
	MaxLineSize = 1024 * 1024
	// UpsertBatchSize is the number of reviews written per statement batch.
	UpsertBatchSize = 500
)
