package platform

import (
	"errors"
	"strings"

	"analytics-srv/internal/model"
)

const (
	Google      = "google"
	Facebook    = "facebook"
	TripAdvisor = "tripadvisor"
	Booking     = "booking"
)

var ErrUnknownPlatform = errors.New("platform: unknown platform")

var tripTypeDimension = &Dimension{
	Name: "trip_type",
	Buckets: []Bucket{
		{Name: "business", Keywords: []string{"business", "work"}},
		{Name: "couples", Keywords: []string{"couple", "romantic", "partner"}},
		{Name: "family", Keywords: []string{"family", "families", "kids", "children"}},
		{Name: "friends", Keywords: []string{"friend", "group"}},
		{Name: "solo", Keywords: []string{"solo", "alone"}},
	},
}

var guestTypeDimension = &Dimension{
	Name: "guest_type",
	Buckets: []Bucket{
		{Name: "solo_traveler", Keywords: []string{"solo"}},
		{Name: "couple", Keywords: []string{"couple"}},
		{Name: "family", Keywords: []string{"family", "kids", "children"}},
		{Name: "group", Keywords: []string{"group", "friends"}},
		{Name: "business", Keywords: []string{"business", "work"}},
	},
}

var registry = map[string]Platform{
	Google: adapter{
		name: Google,
		kind: KindRating,
		engagement: func(c Counters) Engagement {
			return Engagement{Likes: c.Likes + c.HelpfulVotes, Comments: c.Comments, Photos: c.Photos}
		},
	},
	Facebook: adapter{
		name: Facebook,
		kind: KindRecommend,
	},
	TripAdvisor: adapter{
		name:      TripAdvisor,
		kind:      KindRating,
		dimension: tripTypeDimension,
		source:    func(r model.Review) string { return r.TripType },
		engagement: func(c Counters) Engagement {
			return Engagement{Likes: c.HelpfulVotes + c.Likes, Comments: c.Comments, Photos: c.Photos}
		},
	},
	Booking: adapter{
		name:      Booking,
		kind:      KindRating,
		dimension: guestTypeDimension,
		source:    func(r model.Review) string { return r.GuestType },
		engagement: func(c Counters) Engagement {
			return Engagement{Likes: c.HelpfulVotes, Comments: c.Comments, Photos: c.Photos}
		},
	},
}

// Lookup returns the adapter registered for name.
func Lookup(name string) (Platform, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrUnknownPlatform
	}
	return p, nil
}

// Names returns all registered platform names.
func Names() []string {
	return []string{Google, Facebook, TripAdvisor, Booking}
}
