package sentiment

// ISentiment scores free text on [-1, 1].
type ISentiment interface {
	Score(text string) (float64, error)
}

// New returns a lexicon-based scorer. It needs no loading step.
func New() ISentiment {
	return &lexiconImpl{
		valences:    valences,
		negators:    negators,
		intensifier: intensifiers,
	}
}
