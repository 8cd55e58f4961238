package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"analytics-srv/internal/annotation"
	"analytics-srv/internal/model"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/sentiment"
)

type fakeClassifier struct {
	score float64
	err   error
	calls int
}

func (f *fakeClassifier) Score(string) (float64, error) {
	f.calls++
	return f.score, f.err
}

func ptr(v float64) *float64 { return &v }

func TestAnnotate_EmptyText(t *testing.T) {
	fc := &fakeClassifier{score: 0.9}
	uc := New(log.NewNop(), fc)

	for _, text := range []string{"", "   ", "\n\t"} {
		for _, rating := range []*float64{nil, ptr(1), ptr(5)} {
			got, err := uc.Annotate(context.Background(), text, rating)
			if err != nil {
				t.Fatalf("Annotate(%q) unexpected error: %v", text, err)
			}
			if !reflect.DeepEqual(got, model.NeutralAnnotation()) {
				t.Errorf("Annotate(%q) = %+v, want neutral default", text, got)
			}
		}
	}
	if fc.calls != 0 {
		t.Errorf("classifier called %d times for empty text, want 0", fc.calls)
	}
}

func TestAnnotate_ClassifierError(t *testing.T) {
	uc := New(log.NewNop(), &fakeClassifier{err: errors.New("model not loaded")})

	got, err := uc.Annotate(context.Background(), "great food", ptr(5))
	if !errors.Is(err, annotation.ErrClassifierFailed) {
		t.Fatalf("Annotate() error = %v, want ErrClassifierFailed", err)
	}
	if !reflect.DeepEqual(got, model.NeutralAnnotation()) {
		t.Errorf("Annotate() = %+v, want neutral default", got)
	}
}

func TestAnnotate_SentimentBlend(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		rating   *float64
		want     float64
		category model.Sentiment
	}{
		{name: "no rating", raw: 0.456, want: 0.46, category: model.SentimentPositive},
		{name: "rating 5 raw 0.6", raw: 0.6, rating: ptr(5), want: 0.8, category: model.SentimentPositive},
		{name: "rating 1 raw -0.2", raw: -0.2, rating: ptr(1), want: -0.6, category: model.SentimentNegative},
		{name: "rating 3 raw 0", raw: 0, rating: ptr(3), want: 0, category: model.SentimentNeutral},
		{name: "raw out of range clamped", raw: 7, rating: ptr(5), want: 1, category: model.SentimentPositive},
		{name: "small positive stays neutral", raw: 0.1, want: 0.1, category: model.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(log.NewNop(), &fakeClassifier{score: tt.raw})
			got, err := uc.Annotate(context.Background(), "some words here", tt.rating)
			if err != nil {
				t.Fatalf("Annotate() unexpected error: %v", err)
			}
			if got.SentimentScore != tt.want {
				t.Errorf("SentimentScore = %v, want %v", got.SentimentScore, tt.want)
			}
			if got.Category != tt.category {
				t.Errorf("Category = %v, want %v", got.Category, tt.category)
			}
		})
	}
}

func TestAnnotate_Urgency(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		raw    float64
		rating *float64
		want   int
	}{
		{name: "base", text: "fine place", raw: 0.2, want: 3},
		{name: "rating 3", text: "fine place", raw: 0.2, rating: ptr(3), want: 7},
		{name: "rating 2", text: "fine place", raw: 0.2, rating: ptr(2), want: 10},
		{name: "rating 1 with complaint", text: "terrible, complaint", raw: -0.7, rating: ptr(1), want: 10},
		{name: "strong negative text", text: "awful", raw: -0.9, want: 8},
		{name: "issue mentioned", text: "one small Issue with parking", raw: 0.3, rating: ptr(4), want: 9},
		{name: "complaint beats negative", text: "formal complaint", raw: -0.9, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(log.NewNop(), &fakeClassifier{score: tt.raw})
			got, err := uc.Annotate(context.Background(), tt.text, tt.rating)
			if err != nil {
				t.Fatalf("Annotate() unexpected error: %v", err)
			}
			if got.Urgency != tt.want {
				t.Errorf("Urgency = %d, want %d", got.Urgency, tt.want)
			}
		})
	}
}

func TestAnnotate_UrgencyInvariant(t *testing.T) {
	uc := New(log.NewNop(), sentiment.New())
	texts := []string{"great service", "terrible, complaint", "the worst, rude and dirty", "ok", "not bad at all"}
	ratings := []*float64{nil, ptr(1), ptr(2), ptr(2.5), ptr(3), ptr(4), ptr(5)}

	for _, text := range texts {
		for _, rating := range ratings {
			got, err := uc.Annotate(context.Background(), text, rating)
			if err != nil {
				t.Fatalf("Annotate(%q) unexpected error: %v", text, err)
			}
			strong := got.SentimentScore < -0.5 || (rating != nil && *rating <= 2)
			if strong && got.Urgency < 8 {
				t.Errorf("Annotate(%q, %v) urgency = %d, want >= 8", text, rating, got.Urgency)
			}
			if got.Urgency < 3 || got.Urgency > 10 {
				t.Errorf("Annotate(%q) urgency = %d, want within [3,10]", text, got.Urgency)
			}
			if got.SentimentScore < -1 || got.SentimentScore > 1 {
				t.Errorf("Annotate(%q) sentiment = %v, want within [-1,1]", text, got.SentimentScore)
			}
		}
	}
}

func TestAnnotate_Keywords(t *testing.T) {
	uc := New(log.NewNop(), &fakeClassifier{score: 0})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "short tokens and stop words dropped",
			text: "The pasta was good and the wine was fine",
			want: []string{"fine", "good", "pasta", "wine"},
		},
		{
			name: "business term outranks plain term",
			text: "Pasta. Service. Pasta and service were here. Nothing else",
			want: []string{"service", "pasta", "else", "nothing"},
		},
		{
			name: "top five only",
			text: "alpha bravo charlie delta echo foxtrot golf hotel",
			want: []string{"alpha", "bravo", "charlie", "delta", "echo"},
		},
		{
			name: "punctuation stripped",
			text: "Lovely!!! lovely... staff, staff; STAFF",
			want: []string{"staff", "lovely"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Annotate(context.Background(), tt.text, nil)
			if err != nil {
				t.Fatalf("Annotate() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got.Keywords, tt.want) {
				t.Errorf("Keywords = %v, want %v", got.Keywords, tt.want)
			}
		})
	}
}

func TestAnnotate_Topics(t *testing.T) {
	uc := New(log.NewNop(), &fakeClassifier{score: 0})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "none", text: "it was a day", want: []string{}},
		{name: "service and food", text: "The waiter brought our food quickly", want: []string{"service", "food"}},
		{name: "taxonomy order", text: "long wait, overpriced menu, rude staff", want: []string{"service", "food", "value", "timing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Annotate(context.Background(), tt.text, nil)
			if err != nil {
				t.Fatalf("Annotate() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got.Topics, tt.want) {
				t.Errorf("Topics = %v, want %v", got.Topics, tt.want)
			}
		})
	}
}

func TestAnnotate_FiveAndOneStarSets(t *testing.T) {
	uc := New(log.NewNop(), sentiment.New())

	for i := 0; i < 6; i++ {
		got, err := uc.Annotate(context.Background(), "great service", ptr(5))
		if err != nil {
			t.Fatalf("Annotate() unexpected error: %v", err)
		}
		if got.SentimentScore <= 0.3 {
			t.Errorf("5-star sentiment = %v, want > 0.3", got.SentimentScore)
		}
	}
	for i := 0; i < 4; i++ {
		got, err := uc.Annotate(context.Background(), "terrible, complaint", ptr(1))
		if err != nil {
			t.Fatalf("Annotate() unexpected error: %v", err)
		}
		if got.Urgency != 10 {
			t.Errorf("1-star urgency = %d, want 10", got.Urgency)
		}
	}
}

func TestAnnotate_Deterministic(t *testing.T) {
	uc := New(log.NewNop(), sentiment.New())
	text := "Friendly staff and tasty food. The wait was long but the view made up for it!"

	first, _ := uc.Annotate(context.Background(), text, ptr(4))
	for i := 0; i < 5; i++ {
		again, _ := uc.Annotate(context.Background(), text, ptr(4))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Annotate() not deterministic: %+v vs %+v", first, again)
		}
	}
}
