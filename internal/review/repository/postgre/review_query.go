package postgre

import (
	"fmt"

	repo "analytics-srv/internal/review/repository"
)

// Annotation columns are cleared when the review text changes so the next run annotates it again.
const upsertReviewQuery = `
INSERT INTO reviews (
	id, business_id, platform, external_id, rating, recommended, text, published_at,
	reply_text, replied_at, likes, comments, photos, trip_type, guest_type, tags,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
ON CONFLICT (platform, external_id) DO UPDATE SET
	business_id        = EXCLUDED.business_id,
	rating             = EXCLUDED.rating,
	recommended        = EXCLUDED.recommended,
	published_at       = EXCLUDED.published_at,
	reply_text         = EXCLUDED.reply_text,
	replied_at         = EXCLUDED.replied_at,
	likes              = EXCLUDED.likes,
	comments           = EXCLUDED.comments,
	photos             = EXCLUDED.photos,
	trip_type          = EXCLUDED.trip_type,
	guest_type         = EXCLUDED.guest_type,
	tags               = EXCLUDED.tags,
	sentiment_score    = CASE WHEN reviews.text IS DISTINCT FROM EXCLUDED.text OR reviews.rating IS DISTINCT FROM EXCLUDED.rating THEN NULL ELSE reviews.sentiment_score END,
	emotional_category = CASE WHEN reviews.text IS DISTINCT FROM EXCLUDED.text OR reviews.rating IS DISTINCT FROM EXCLUDED.rating THEN NULL ELSE reviews.emotional_category END,
	keywords           = CASE WHEN reviews.text IS DISTINCT FROM EXCLUDED.text OR reviews.rating IS DISTINCT FROM EXCLUDED.rating THEN NULL ELSE reviews.keywords END,
	topics             = CASE WHEN reviews.text IS DISTINCT FROM EXCLUDED.text OR reviews.rating IS DISTINCT FROM EXCLUDED.rating THEN NULL ELSE reviews.topics END,
	urgency            = CASE WHEN reviews.text IS DISTINCT FROM EXCLUDED.text OR reviews.rating IS DISTINCT FROM EXCLUDED.rating THEN NULL ELSE reviews.urgency END,
	annotated_at       = CASE WHEN reviews.text IS DISTINCT FROM EXCLUDED.text OR reviews.rating IS DISTINCT FROM EXCLUDED.rating THEN NULL ELSE reviews.annotated_at END,
	text               = EXCLUDED.text,
	updated_at         = NOW()`

const reviewColumns = `
	id, business_id, platform, external_id, rating, recommended, text, published_at,
	reply_text, replied_at, likes, comments, photos, trip_type, guest_type, tags,
	sentiment_score, emotional_category, keywords, topics, urgency, annotated_at,
	created_at, updated_at`

const saveAnnotationQuery = `
UPDATE reviews SET
	sentiment_score    = $2,
	emotional_category = $3,
	keywords           = $4,
	topics             = $5,
	urgency            = $6,
	annotated_at       = NOW(),
	updated_at         = NOW()
WHERE id = $1`

const listBusinessesQuery = `
SELECT business_id, platform, COUNT(*), MAX(published_at)
FROM reviews
GROUP BY business_id, platform
ORDER BY business_id, platform`

// buildListReviewsQuery - Build query for ListReviews
func (r *implRepository) buildListReviewsQuery(opt repo.ListReviewsOptions) (string, []any) {
	query := `SELECT` + reviewColumns + `
FROM reviews
WHERE business_id = $1 AND platform = $2
ORDER BY published_at DESC, external_id ASC`
	args := []any{opt.BusinessID, opt.Platform}

	// Safety limit
	if opt.Limit > 0 {
		query += fmt.Sprintf("\nLIMIT %d", opt.Limit)
	}

	return query, args
}
