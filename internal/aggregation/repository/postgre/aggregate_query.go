package postgre

const upsertOverviewQuery = `
INSERT INTO analytics_overviews (
	id, business_id, platform, run_id, total_reviews,
	average_rating, recommendation_rate, approval_rate, response_rate, avg_response_hours,
	average_sentiment, urgent_count, engagement_score, virality_score, quality_score,
	engagement_trend, rating_trend, last_review_at, computed_at, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5,
	$6, $7, $8, $9, $10,
	$11, $12, $13, $14, $15,
	$16, $17, $18, $19, NOW(), NOW()
)
ON CONFLICT (business_id, platform) DO UPDATE SET
	run_id              = EXCLUDED.run_id,
	total_reviews       = EXCLUDED.total_reviews,
	average_rating      = EXCLUDED.average_rating,
	recommendation_rate = EXCLUDED.recommendation_rate,
	approval_rate       = EXCLUDED.approval_rate,
	response_rate       = EXCLUDED.response_rate,
	avg_response_hours  = EXCLUDED.avg_response_hours,
	average_sentiment   = EXCLUDED.average_sentiment,
	urgent_count        = EXCLUDED.urgent_count,
	engagement_score    = EXCLUDED.engagement_score,
	virality_score      = EXCLUDED.virality_score,
	quality_score       = EXCLUDED.quality_score,
	engagement_trend    = EXCLUDED.engagement_trend,
	rating_trend        = EXCLUDED.rating_trend,
	last_review_at      = EXCLUDED.last_review_at,
	computed_at         = EXCLUDED.computed_at,
	updated_at          = NOW()
RETURNING id`

const upsertDistributionQuery = `
INSERT INTO analytics_distributions (
	id, business_id, platform, run_id, total_reviews, snapshot, computed_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
ON CONFLICT (business_id, platform) DO UPDATE SET
	run_id        = EXCLUDED.run_id,
	total_reviews = EXCLUDED.total_reviews,
	snapshot      = EXCLUDED.snapshot,
	computed_at   = EXCLUDED.computed_at,
	updated_at    = NOW()
RETURNING id`

const upsertPeriodQuery = `
INSERT INTO analytics_periods (
	id, business_id, platform, period_key, label, window_start, window_end, run_id,
	review_count, average_rating, rating_histogram,
	recommended_count, not_recommended_count, recommendation_rate, approval_rate,
	total_likes, total_comments, total_photos, total_engagement,
	avg_likes_per_review, avg_comments_per_review, avg_photos_per_review, avg_engagement_per_review,
	positive_count, neutral_count, negative_count, average_sentiment, urgent_count,
	response_count, response_rate, avg_response_hours, avg_review_quality,
	engagement_score, virality_score, quality_score, computed_at, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8,
	$9, $10, $11,
	$12, $13, $14, $15,
	$16, $17, $18, $19,
	$20, $21, $22, $23,
	$24, $25, $26, $27, $28,
	$29, $30, $31, $32,
	$33, $34, $35, $36, NOW(), NOW()
)
ON CONFLICT (business_id, platform, period_key) DO UPDATE SET
	label                     = EXCLUDED.label,
	window_start              = EXCLUDED.window_start,
	window_end                = EXCLUDED.window_end,
	run_id                    = EXCLUDED.run_id,
	review_count              = EXCLUDED.review_count,
	average_rating            = EXCLUDED.average_rating,
	rating_histogram          = EXCLUDED.rating_histogram,
	recommended_count         = EXCLUDED.recommended_count,
	not_recommended_count     = EXCLUDED.not_recommended_count,
	recommendation_rate       = EXCLUDED.recommendation_rate,
	approval_rate             = EXCLUDED.approval_rate,
	total_likes               = EXCLUDED.total_likes,
	total_comments            = EXCLUDED.total_comments,
	total_photos              = EXCLUDED.total_photos,
	total_engagement          = EXCLUDED.total_engagement,
	avg_likes_per_review      = EXCLUDED.avg_likes_per_review,
	avg_comments_per_review   = EXCLUDED.avg_comments_per_review,
	avg_photos_per_review     = EXCLUDED.avg_photos_per_review,
	avg_engagement_per_review = EXCLUDED.avg_engagement_per_review,
	positive_count            = EXCLUDED.positive_count,
	neutral_count             = EXCLUDED.neutral_count,
	negative_count            = EXCLUDED.negative_count,
	average_sentiment         = EXCLUDED.average_sentiment,
	urgent_count              = EXCLUDED.urgent_count,
	response_count            = EXCLUDED.response_count,
	response_rate             = EXCLUDED.response_rate,
	avg_response_hours        = EXCLUDED.avg_response_hours,
	avg_review_quality        = EXCLUDED.avg_review_quality,
	engagement_score          = EXCLUDED.engagement_score,
	virality_score            = EXCLUDED.virality_score,
	quality_score             = EXCLUDED.quality_score,
	computed_at               = EXCLUDED.computed_at,
	updated_at                = NOW()
RETURNING id`
