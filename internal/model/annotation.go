package model

// Sentiment is the emotional category of a review.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

const (
	// MinUrgency is the urgency of a review that needs no particular attention.
	MinUrgency = 3
	// MaxUrgency is the urgency of a low-rated review.
	MaxUrgency = 10
	// UrgentThreshold marks reviews that need an owner response.
	UrgentThreshold = 8
)

// Annotation is the sentiment/keyword/topic/urgency enrichment of one review.
type Annotation struct {
	SentimentScore float64   `json:"sentiment_score"`
	Category       Sentiment `json:"emotional_category"`
	Keywords       []string  `json:"keywords"`
	Topics         []string  `json:"topics"`
	Urgency        int       `json:"urgency"`
}

// NeutralAnnotation is the annotation of an empty review and the fallback when annotation fails.
func NeutralAnnotation() Annotation {
	return Annotation{
		SentimentScore: 0,
		Category:       SentimentNeutral,
		Keywords:       []string{},
		Topics:         []string{},
		Urgency:        MinUrgency,
	}
}

// ReviewAnnotation pairs a freshly computed annotation with its review.
type ReviewAnnotation struct {
	ReviewID   string
	Annotation Annotation
}
