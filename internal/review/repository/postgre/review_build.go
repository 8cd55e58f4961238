package postgre

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"analytics-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func buildUpsertArgs(r model.Review) []any {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	var (
		rating      sql.NullFloat64
		recommended sql.NullBool
		repliedAt   sql.NullTime
	)
	if r.Rating != nil {
		rating = sql.NullFloat64{Float64: *r.Rating, Valid: true}
	}
	if r.Recommended != nil {
		recommended = sql.NullBool{Bool: *r.Recommended, Valid: true}
	}
	if r.RepliedAt != nil {
		repliedAt = sql.NullTime{Time: *r.RepliedAt, Valid: true}
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return []any{
		id, r.BusinessID, r.Platform, r.ExternalID, rating, recommended, r.Text, r.PublishedAt,
		r.ReplyText, repliedAt, r.Likes, r.Comments, r.Photos, r.TripType, r.GuestType, pq.Array(tags),
	}
}

// scanReview decodes one row selected with reviewColumns.
func scanReview(row rowScanner) (model.Review, error) {
	var (
		r           model.Review
		rating      sql.NullFloat64
		recommended sql.NullBool
		repliedAt   sql.NullTime
		tags        pq.StringArray
		sentiment   sql.NullFloat64
		category    sql.NullString
		keywords    pq.StringArray
		topics      pq.StringArray
		urgency     sql.NullInt64
		annotatedAt sql.NullTime
	)

	err := row.Scan(
		&r.ID, &r.BusinessID, &r.Platform, &r.ExternalID, &rating, &recommended, &r.Text, &r.PublishedAt,
		&r.ReplyText, &repliedAt, &r.Likes, &r.Comments, &r.Photos, &r.TripType, &r.GuestType, &tags,
		&sentiment, &category, &keywords, &topics, &urgency, &annotatedAt,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return model.Review{}, err
	}

	if rating.Valid {
		v := rating.Float64
		r.Rating = &v
	}
	if recommended.Valid {
		v := recommended.Bool
		r.Recommended = &v
	}
	if repliedAt.Valid {
		v := repliedAt.Time
		r.RepliedAt = &v
	}
	r.Tags = []string(tags)

	if annotatedAt.Valid {
		r.Annotation = &model.Annotation{
			SentimentScore: sentiment.Float64,
			Category:       model.Sentiment(category.String),
			Keywords:       nonNil(keywords),
			Topics:         nonNil(topics),
			Urgency:        int(urgency.Int64),
		}
	}

	return r, nil
}

func buildAnnotationArgs(a model.ReviewAnnotation) []any {
	return []any{
		a.ReviewID,
		a.Annotation.SentimentScore,
		string(a.Annotation.Category),
		pq.Array(nonNil(a.Annotation.Keywords)),
		pq.Array(nonNil(a.Annotation.Topics)),
		a.Annotation.Urgency,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
