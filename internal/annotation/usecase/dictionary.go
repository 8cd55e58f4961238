package usecase

import "analytics-srv/internal/annotation"

var stopWords = toSet(
	"about", "above", "after", "again", "also", "been", "before", "being", "below", "both",
	"could", "does", "doing", "down", "during", "each", "even", "every", "from", "further",
	"have", "having", "here", "hers", "herself", "himself", "into", "itself", "just", "like",
	"more", "most", "much", "myself", "only", "other", "ours", "ourselves", "over", "same",
	"should", "some", "such", "than", "that", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "through", "under", "until", "very", "were",
	"what", "when", "where", "which", "while", "will", "with", "would", "your", "yours",
	"yourself", "really", "thing", "things", "went", "came", "back", "dont", "didnt", "wasnt",
)

// businessTerms are boosted during keyword ranking.
var businessTerms = toSet(
	"service", "staff", "food", "price", "prices", "quality", "experience", "location",
	"atmosphere", "ambiance", "clean", "cleanliness", "room", "rooms", "breakfast", "manager",
	"waiter", "waitress", "value", "menu", "booking", "reservation", "parking", "wait",
)

var topicTerms = map[string][]string{
	annotation.TopicService:    {"service", "staff", "waiter", "waitress", "server", "manager", "friendly", "rude", "helpful", "attentive", "reception", "host"},
	annotation.TopicFood:       {"food", "meal", "dish", "dishes", "taste", "tasty", "delicious", "menu", "breakfast", "dinner", "lunch", "drink", "drinks", "coffee"},
	annotation.TopicAmbiance:   {"ambiance", "ambience", "atmosphere", "decor", "music", "noisy", "quiet", "cozy", "view", "interior"},
	annotation.TopicValue:      {"price", "prices", "value", "expensive", "cheap", "overpriced", "affordable", "cost", "money", "worth"},
	annotation.TopicLocation:   {"location", "parking", "area", "neighborhood", "central", "located", "downtown", "beach", "station"},
	annotation.TopicTiming:     {"wait", "waiting", "waited", "slow", "fast", "quick", "late", "delay", "delayed", "minutes", "hour", "hours"},
	annotation.TopicQuality:    {"quality", "clean", "dirty", "fresh", "broken", "standard", "condition", "maintained"},
	annotation.TopicExperience: {"experience", "visit", "stay", "recommend", "return", "enjoyed", "memorable", "disappointed", "disappointing"},
}

// topicIndex maps a term to its topic. Terms appear under one topic only.
var topicIndex = func() map[string]string {
	idx := make(map[string]string)
	for _, topic := range annotation.Taxonomy {
		for _, term := range topicTerms[topic] {
			if _, dup := idx[term]; !dup {
				idx[term] = topic
			}
		}
	}
	return idx
}()

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
