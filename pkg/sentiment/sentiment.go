package sentiment

import (
	"math"
	"strings"
	"unicode"
)

type lexiconImpl struct {
	valences    map[string]float64
	negators    map[string]struct{}
	intensifier map[string]float64
}

// Score sums token valences with negation and intensifier handling and squashes the sum into [-1, 1].
func (s *lexiconImpl) Score(text string) (float64, error) {
	tokens := tokens(text)
	if len(tokens) == 0 {
		return 0, nil
	}

	var sum float64
	for i, tok := range tokens {
		v, ok := s.valences[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if boost, ok := s.intensifier[tokens[i-1]]; ok {
				if v > 0 {
					v += boost
				} else {
					v -= boost
				}
			}
		}
		if s.negated(tokens, i) {
			v *= negationScalar
		}
		sum += v
	}

	if sum != 0 {
		bangs := math.Min(float64(strings.Count(text, "!")), maxExclamations)
		if sum > 0 {
			sum += bangs * exclamationBoost
		} else {
			sum -= bangs * exclamationBoost
		}
	}

	return normalize(sum), nil
}

func (s *lexiconImpl) negated(tokens []string, i int) bool {
	start := i - negationLookback
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if _, ok := s.negators[tokens[j]]; ok {
			return true
		}
	}
	return false
}

func normalize(sum float64) float64 {
	score := sum / math.Sqrt(sum*sum+normalizationAlpha)
	if score < -1 {
		return -1
	}
	if score > 1 {
		return 1
	}
	return score
}

func tokens(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "'", ""))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
