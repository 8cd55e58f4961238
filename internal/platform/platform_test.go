package platform

import (
	"errors"
	"testing"

	"analytics-srv/internal/model"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantErr  error
	}{
		{name: "google", input: "google", wantKind: KindRating},
		{name: "facebook mixed case", input: " Facebook ", wantKind: KindRecommend},
		{name: "tripadvisor", input: "tripadvisor", wantKind: KindRating},
		{name: "booking", input: "booking", wantKind: KindRating},
		{name: "unknown", input: "yelp", wantErr: ErrUnknownPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Lookup(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if p.Kind() != tt.wantKind {
				t.Errorf("Lookup(%q).Kind() = %v, want %v", tt.input, p.Kind(), tt.wantKind)
			}
		})
	}
}

func TestRatingAndRecommended(t *testing.T) {
	four := 4.0
	yes := true

	google, _ := Lookup(Google)
	if got, ok := google.Rating(model.Review{Rating: &four}); !ok || got != 4 {
		t.Errorf("google.Rating() = %v, %v, want 4, true", got, ok)
	}
	if _, ok := google.Rating(model.Review{}); ok {
		t.Errorf("google.Rating() on missing rating should be false")
	}

	facebook, _ := Lookup(Facebook)
	if _, ok := facebook.Rating(model.Review{Rating: &four}); ok {
		t.Errorf("facebook.Rating() should be false on a recommend platform")
	}
	if !facebook.Recommended(model.Review{Recommended: &yes}) {
		t.Errorf("facebook.Recommended() = false, want true")
	}
	if facebook.Recommended(model.Review{}) {
		t.Errorf("facebook.Recommended() on missing flag = true, want false")
	}
}

func TestCategory(t *testing.T) {
	tripadvisor, _ := Lookup(TripAdvisor)
	booking, _ := Lookup(Booking)
	google, _ := Lookup(Google)

	tests := []struct {
		name   string
		p      Platform
		review model.Review
		want   string
		wantOK bool
	}{
		{name: "trip type family", p: tripadvisor, review: model.Review{TripType: "Traveled with FAMILY"}, want: "family", wantOK: true},
		{name: "trip type business wins first", p: tripadvisor, review: model.Review{TripType: "business trip with friends"}, want: "business", wantOK: true},
		{name: "trip type unmatched", p: tripadvisor, review: model.Review{TripType: "other"}, wantOK: false},
		{name: "trip type empty", p: tripadvisor, review: model.Review{}, wantOK: false},
		{name: "guest type solo", p: booking, review: model.Review{GuestType: "Solo traveller"}, want: "solo_traveler", wantOK: true},
		{name: "guest type group", p: booking, review: model.Review{GuestType: "Group of friends"}, want: "group", wantOK: true},
		{name: "no dimension", p: google, review: model.Review{TripType: "family"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.Category(tt.review)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Category() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEngagement(t *testing.T) {
	c := Counters{Likes: 2, Comments: 3, HelpfulVotes: 5, Photos: 1}

	tests := []struct {
		platform string
		want     Engagement
	}{
		{platform: Google, want: Engagement{Likes: 7, Comments: 3, Photos: 1}},
		{platform: Facebook, want: Engagement{Likes: 2, Comments: 3, Photos: 1}},
		{platform: TripAdvisor, want: Engagement{Likes: 7, Comments: 3, Photos: 1}},
		{platform: Booking, want: Engagement{Likes: 5, Comments: 3, Photos: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			p, _ := Lookup(tt.platform)
			if got := p.Engagement(c); got != tt.want {
				t.Errorf("Engagement() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
