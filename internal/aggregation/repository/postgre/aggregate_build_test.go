package postgre

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	repo "analytics-srv/internal/aggregation/repository"
	"analytics-srv/internal/model"
)

func TestBuildChildArrays(t *testing.T) {
	terms := []model.TermCount{{Term: "pasta", Count: 5}, {Term: "wine", Count: 2}}

	ids, names, counts, ranks := buildChildArrays(terms)

	if len(ids) != 2 || ids[0] == ids[1] || ids[0] == "" {
		t.Errorf("ids = %v, want two distinct ids", ids)
	}
	if names[0] != "pasta" || names[1] != "wine" {
		t.Errorf("names = %v", names)
	}
	if counts[0] != 5 || counts[1] != 2 {
		t.Errorf("counts = %v", counts)
	}
	if ranks[0] != 1 || ranks[1] != 2 {
		t.Errorf("ranks = %v, want [1 2]", ranks)
	}
}

func TestNullHelpers(t *testing.T) {
	v := 4.2
	if got := nullFloat(&v); !got.Valid || got.Float64 != 4.2 {
		t.Errorf("nullFloat(&4.2) = %+v", got)
	}
	if got := nullFloat(nil); got.Valid {
		t.Errorf("nullFloat(nil) should be invalid")
	}

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := nullTime(&now); !got.Valid || !got.Time.Equal(now) {
		t.Errorf("nullTime(&now) = %+v", got)
	}
	if got := nullTime(nil); got.Valid {
		t.Errorf("nullTime(nil) should be invalid")
	}
}

func TestPqCode(t *testing.T) {
	wrapped := fmt.Errorf("upsert: %w", &pq.Error{Code: "23505"})
	if got := pqCode(wrapped); got != "23505" {
		t.Errorf("pqCode() = %q, want 23505", got)
	}
	if got := pqCode(errors.New("plain")); got != "" {
		t.Errorf("pqCode(plain) = %q, want empty", got)
	}
}

func TestBuildPeriodArgs(t *testing.T) {
	avg := 4.5
	start := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	opt := repo.UpsertAggregatesOptions{RunID: "run-1", BusinessID: "biz-1", Platform: "google", ComputedAt: start}
	m := model.PeriodMetrics{
		PeriodKey:       7,
		Label:           "Last 7 Days",
		WindowStart:     &start,
		AverageRating:   &avg,
		RatingHistogram: model.RatingHistogram{FiveStar: 3},
	}

	args, err := buildPeriodArgs(opt, m)
	if err != nil {
		t.Fatalf("buildPeriodArgs() unexpected error: %v", err)
	}
	if len(args) != 36 {
		t.Fatalf("len(args) = %d, want 36 to match the query placeholders", len(args))
	}
	if args[1] != "biz-1" || args[2] != "google" {
		t.Errorf("owner args = %v/%v, want biz-1/google", args[1], args[2])
	}
	if args[3] != 7 || args[4] != "Last 7 Days" || args[7] != "run-1" {
		t.Errorf("identity args = %v %v %v", args[3], args[4], args[7])
	}
	if ws, ok := args[5].(sql.NullTime); !ok || !ws.Valid {
		t.Errorf("window_start arg = %#v, want valid NullTime", args[5])
	}
	if we, ok := args[6].(sql.NullTime); !ok || we.Valid {
		t.Errorf("window_end arg = %#v, want invalid NullTime", args[6])
	}

	var h map[string]int
	if err := json.Unmarshal(args[10].([]byte), &h); err != nil || h["5"] != 3 {
		t.Errorf("rating_histogram = %s, want {\"5\":3,...}", args[10])
	}
}

func TestBuildOverviewArgs(t *testing.T) {
	opt := repo.UpsertAggregatesOptions{
		BusinessID: "biz-1",
		Platform:   "google",
		RunID:      "run-1",
		Overview:   model.Overview{TotalReviews: 4, EngagementTrend: model.TrendRising, RatingTrend: model.TrendStable},
	}

	args := buildOverviewArgs(opt)
	if len(args) != 19 {
		t.Fatalf("len(args) = %d, want 19 to match the query placeholders", len(args))
	}
	if args[15] != "rising" || args[16] != "stable" {
		t.Errorf("trend args = %v/%v", args[15], args[16])
	}
}

func TestUpsertQueries_KeyedByBusinessAndPlatform(t *testing.T) {
	tcs := map[string]struct {
		query    string
		conflict string
	}{
		"overview":     {query: upsertOverviewQuery, conflict: "ON CONFLICT (business_id, platform) DO UPDATE"},
		"distribution": {query: upsertDistributionQuery, conflict: "ON CONFLICT (business_id, platform) DO UPDATE"},
		"period":       {query: upsertPeriodQuery, conflict: "ON CONFLICT (business_id, platform, period_key) DO UPDATE"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if !strings.Contains(tc.query, tc.conflict) {
				t.Errorf("query missing %q", tc.conflict)
			}
		})
	}

	if got := strings.Count(upsertPeriodQuery, "$"); got != 36 {
		t.Errorf("period query placeholders = %d, want 36", got)
	}
}
