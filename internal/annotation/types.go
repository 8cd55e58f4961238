package annotation

// Topics of the fixed taxonomy, in output order.
const (
	TopicService    = "service"
	TopicFood       = "food"
	TopicAmbiance   = "ambiance"
	TopicValue      = "value"
	TopicLocation   = "location"
	TopicTiming     = "timing"
	TopicQuality    = "quality"
	TopicExperience = "experience"
)

// Taxonomy lists every topic a review can carry.
var Taxonomy = []string{
	TopicService,
	TopicFood,
	TopicAmbiance,
	TopicValue,
	TopicLocation,
	TopicTiming,
	TopicQuality,
	TopicExperience,
}

const (
	// MaxKeywords is the number of keywords kept per review.
	MaxKeywords = 5
	// MinKeywordLength is the shortest token kept as a keyword.
	MinKeywordLength = 4
)
