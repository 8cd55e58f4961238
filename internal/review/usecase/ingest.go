package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"analytics-srv/internal/model"
	"analytics-srv/internal/platform"
	"analytics-srv/internal/review"
	repo "analytics-srv/internal/review/repository"
	"analytics-srv/pkg/minio"
)

// Ingest - Load a JSONL review batch from MinIO and upsert it
func (uc *implUseCase) Ingest(ctx context.Context, ip review.IngestInput) (review.IngestOutput, error) {
	startTime := time.Now()

	if strings.TrimSpace(ip.BusinessID) == "" || strings.TrimSpace(ip.FileURL) == "" {
		return review.IngestOutput{}, review.ErrInvalidInput
	}
	p, err := platform.Lookup(ip.Platform)
	if err != nil {
		uc.l.Warnf(ctx, "review.usecase.Ingest: Unknown platform %q", ip.Platform)
		return review.IngestOutput{}, review.ErrUnknownPlatform
	}

	// Step 1: Parse file URL to get bucket and object name
	bucket, objectName, err := minio.ParseObjectURL(ip.FileURL)
	if err != nil {
		uc.l.Errorf(ctx, "review.usecase.Ingest: Failed to parse MinIO URL: %v", err)
		return review.IngestOutput{}, review.ErrFileNotFound
	}

	// Step 2: Download file
	reader, _, err := uc.storage.DownloadFile(ctx, &minio.DownloadRequest{
		BucketName: bucket,
		ObjectName: objectName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "review.usecase.Ingest: Failed to download file: %v", err)
		if errors.Is(err, minio.ErrObjectNotFound) || errors.Is(err, minio.ErrBucketNotFound) {
			return review.IngestOutput{}, review.ErrFileNotFound
		}
		return review.IngestOutput{}, review.ErrFileDownloadFailed
	}
	defer reader.Close()

	// Step 3: Parse JSONL
	records, malformed, err := uc.parseJSONL(ctx, reader)
	if err != nil {
		uc.l.Errorf(ctx, "review.usecase.Ingest: Failed to parse file: %v", err)
		return review.IngestOutput{}, review.ErrFileParseFailed
	}

	out := review.IngestOutput{
		Received: len(records) + malformed,
		Skipped:  malformed,
	}

	// Step 4: Validate, normalize and dedupe
	reviews := make([]model.Review, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if err := validateRecord(p, rec); err != nil {
			uc.l.Warnf(ctx, "review.usecase.Ingest: Skipping record %d (%s): %v", i+1, rec.ExternalID, err)
			out.Skipped++
			continue
		}
		if _, dup := seen[rec.ExternalID]; dup {
			out.Duplicates++
			continue
		}
		seen[rec.ExternalID] = struct{}{}
		reviews = append(reviews, toReview(p, ip.BusinessID, rec))
	}

	// Step 5: Upsert in batches
	for start := 0; start < len(reviews); start += review.UpsertBatchSize {
		end := min(start+review.UpsertBatchSize, len(reviews))
		n, err := uc.repo.UpsertReviews(ctx, repo.UpsertReviewsOptions{Reviews: reviews[start:end]})
		if err != nil {
			uc.l.Errorf(ctx, "review.usecase.Ingest: Failed to store reviews [%d:%d]: %v", start, end, err)
			return out, fmt.Errorf("%w: %w", review.ErrStoreFailed, err)
		}
		out.Stored += n
	}

	out.Duration = time.Since(startTime)
	uc.l.Infof(ctx, "review.usecase.Ingest: business=%s platform=%s received=%d stored=%d skipped=%d duplicates=%d",
		ip.BusinessID, p.Name(), out.Received, out.Stored, out.Skipped, out.Duplicates)

	return out, nil
}

// parseJSONL - Decode one BatchRecord per line. Malformed lines are counted, not fatal.
func (uc *implUseCase) parseJSONL(ctx context.Context, reader io.Reader) ([]review.BatchRecord, int, error) {
	var (
		records   []review.BatchRecord
		malformed int
	)
	scanner := bufio.NewScanner(reader)

	buf := make([]byte, 0, review.MaxLineSize)
	scanner.Buffer(buf, review.MaxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var record review.BatchRecord
		if err := json.Unmarshal(line, &record); err != nil {
			uc.l.Warnf(ctx, "review.usecase.parseJSONL: Failed to parse line %d: %v", lineNum, err)
			malformed++
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	return records, malformed, nil
}

func validateRecord(p platform.Platform, rec review.BatchRecord) error {
	if strings.TrimSpace(rec.ExternalID) == "" {
		return errors.New("external_id is required")
	}
	if rec.PublishedAt.IsZero() {
		return errors.New("published_at is required")
	}
	if p.Kind() == platform.KindRating {
		if rec.Rating == nil {
			return errors.New("rating is required")
		}
		if *rec.Rating < 1 || *rec.Rating > 5 {
			return fmt.Errorf("rating %.2f out of range [1,5]", *rec.Rating)
		}
	}
	if rec.Likes < 0 || rec.Comments < 0 || rec.HelpfulVotes < 0 || rec.Photos < 0 {
		return errors.New("negative engagement counter")
	}
	return nil
}

func toReview(p platform.Platform, businessID string, rec review.BatchRecord) model.Review {
	eng := p.Engagement(platform.Counters{
		Likes:        rec.Likes,
		Comments:     rec.Comments,
		HelpfulVotes: rec.HelpfulVotes,
		Photos:       rec.Photos,
	})

	r := model.Review{
		BusinessID:  businessID,
		Platform:    p.Name(),
		ExternalID:  strings.TrimSpace(rec.ExternalID),
		Text:        rec.Text,
		PublishedAt: rec.PublishedAt.UTC(),
		ReplyText:   rec.ReplyText,
		RepliedAt:   rec.RepliedAt,
		Likes:       eng.Likes,
		Comments:    eng.Comments,
		Photos:      eng.Photos,
		TripType:    strings.TrimSpace(rec.TripType),
		GuestType:   strings.TrimSpace(rec.GuestType),
		Tags:        rec.Tags,
	}

	switch p.Kind() {
	case platform.KindRating:
		r.Rating = rec.Rating
	case platform.KindRecommend:
		r.Recommended = rec.Recommended
	}

	return r
}
