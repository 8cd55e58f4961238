package consumer

import (
	"context"
	"testing"

	"github.com/IBM/sarama"

	"analytics-srv/config"
	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/model"
	"analytics-srv/internal/review"
	"analytics-srv/pkg/log"
)

type fakeAggregation struct {
	calls []aggregation.RunInput
	err   error
}

func (f *fakeAggregation) Run(_ context.Context, ip aggregation.RunInput) (aggregation.RunOutput, error) {
	f.calls = append(f.calls, ip)
	if f.err != nil {
		return aggregation.RunOutput{State: aggregation.StateFailed}, f.err
	}
	return aggregation.RunOutput{RunID: "run-1", State: aggregation.StateDone}, nil
}

type fakeReview struct {
	ingested []review.IngestInput
	err      error
}

func (f *fakeReview) Ingest(_ context.Context, ip review.IngestInput) (review.IngestOutput, error) {
	f.ingested = append(f.ingested, ip)
	return review.IngestOutput{Stored: 1}, f.err
}

func (f *fakeReview) List(context.Context, string, string) ([]model.Review, error) { return nil, nil }

func (f *fakeReview) SaveAnnotations(context.Context, []model.ReviewAnnotation) error { return nil }

func (f *fakeReview) ListBusinesses(context.Context) ([]model.Business, error) { return nil, nil }

func newTestConsumer(t *testing.T, agg *fakeAggregation, rv *fakeReview) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:        log.NewNop(),
		KafkaConfig:   config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:       agg,
		ReviewUseCase: rv,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestHandleBatchIngestedMessage(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		ingestErr    error
		runErr       error
		wantErr      bool
		wantIngested int
		wantRuns     int
	}{
		{
			name:         "ingest then run",
			value:        `{"business_id":"biz-1","platform":"google","file_url":"s3://b/o.jsonl","review_count":3}`,
			wantIngested: 1,
			wantRuns:     1,
		},
		{
			name:     "run only without file",
			value:    `{"business_id":"biz-1","platform":"google"}`,
			wantRuns: 1,
		},
		{
			name:  "malformed json is skipped",
			value: `{not json`,
		},
		{
			name:  "missing business is skipped",
			value: `{"platform":"google"}`,
		},
		{
			name:         "unknown platform is skipped",
			value:        `{"business_id":"biz-1","platform":"yelp","file_url":"s3://b/o"}`,
			ingestErr:    review.ErrUnknownPlatform,
			wantIngested: 1,
		},
		{
			name:         "download failure is retried",
			value:        `{"business_id":"biz-1","platform":"google","file_url":"s3://b/o"}`,
			ingestErr:    review.ErrFileDownloadFailed,
			wantErr:      true,
			wantIngested: 1,
		},
		{
			name:     "run in progress is acknowledged",
			value:    `{"business_id":"biz-1","platform":"google"}`,
			runErr:   aggregation.ErrRunInProgress,
			wantRuns: 1,
		},
		{
			name:     "no data is acknowledged",
			value:    `{"business_id":"biz-1","platform":"google"}`,
			runErr:   aggregation.ErrNoData,
			wantRuns: 1,
		},
		{
			name:     "persistence failure is retried",
			value:    `{"business_id":"biz-1","platform":"google"}`,
			runErr:   aggregation.ErrPersistenceFailed,
			wantErr:  true,
			wantRuns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &fakeAggregation{err: tt.runErr}
			rv := &fakeReview{err: tt.ingestErr}
			c := newTestConsumer(t, agg, rv)

			err := c.handleBatchIngestedMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(tt.value)})
			if (err != nil) != tt.wantErr {
				t.Errorf("handleBatchIngestedMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(rv.ingested) != tt.wantIngested {
				t.Errorf("ingest calls = %d, want %d", len(rv.ingested), tt.wantIngested)
			}
			if len(agg.calls) != tt.wantRuns {
				t.Errorf("run calls = %d, want %d", len(agg.calls), tt.wantRuns)
			}
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), UseCase: &fakeAggregation{}, ReviewUseCase: &fakeReview{}})
	if err == nil {
		t.Error("New() without brokers should fail")
	}

	c := newTestConsumer(t, &fakeAggregation{}, &fakeReview{})
	if c.ingestTopic() != "reviews.batch.ingested" {
		t.Errorf("ingestTopic() = %q", c.ingestTopic())
	}
	if c.groupID() != "analytics-srv-ingest" {
		t.Errorf("groupID() = %q", c.groupID())
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
