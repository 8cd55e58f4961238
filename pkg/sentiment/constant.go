package sentiment

const (
	// normalizationAlpha approximates the expected max of the raw sum.
	normalizationAlpha = 15.0
	// negationScalar flips and dampens a negated valence.
	negationScalar = -0.74
	// negationLookback is how many preceding tokens may negate a word.
	negationLookback = 3
	// exclamationBoost is added per '!' up to maxExclamations.
	exclamationBoost = 0.292
	maxExclamations  = 4
)

// valences maps a lower-case token to its polarity on a -4..4 scale.
var valences = map[string]float64{
	// positive
	"amazing":     2.8,
	"awesome":     3.1,
	"beautiful":   2.9,
	"best":        3.2,
	"clean":       1.7,
	"comfortable": 1.8,
	"cozy":        1.9,
	"delicious":   2.7,
	"enjoy":       2.2,
	"enjoyed":     2.3,
	"excellent":   2.7,
	"fantastic":   2.6,
	"fast":        1.0,
	"fresh":       1.3,
	"friendly":    2.2,
	"glad":        2.0,
	"good":        1.9,
	"great":       3.1,
	"happy":       2.7,
	"helpful":     1.8,
	"impressed":   2.1,
	"love":        3.2,
	"loved":       2.9,
	"lovely":      2.8,
	"nice":        1.8,
	"perfect":     2.7,
	"pleasant":    2.3,
	"polite":      1.9,
	"recommend":   1.5,
	"satisfied":   1.8,
	"superb":      3.1,
	"tasty":       2.0,
	"wonderful":   2.7,
	"worth":       0.9,
	// negative
	"awful":         -2.0,
	"bad":           -2.5,
	"broken":        -1.9,
	"cold":          -0.8,
	"complaint":     -1.5,
	"dirty":         -1.9,
	"disappointed":  -2.1,
	"disappointing": -2.2,
	"disgusting":    -2.4,
	"expensive":     -0.9,
	"horrible":      -2.5,
	"issue":         -0.8,
	"late":          -0.8,
	"mediocre":      -1.0,
	"noisy":         -1.1,
	"overpriced":    -1.6,
	"poor":          -2.1,
	"problem":       -1.7,
	"rude":          -2.0,
	"slow":          -1.2,
	"terrible":      -2.5,
	"unfriendly":    -1.5,
	"unhappy":       -1.8,
	"waste":         -1.8,
	"worst":         -3.1,
	"wrong":         -2.1,
}

var negators = map[string]struct{}{
	"aint": {}, "arent": {}, "cannot": {}, "cant": {}, "couldnt": {}, "didnt": {},
	"doesnt": {}, "dont": {}, "hardly": {}, "isnt": {}, "neither": {}, "never": {},
	"no": {}, "nobody": {}, "none": {}, "nor": {}, "not": {}, "nothing": {},
	"shouldnt": {}, "wasnt": {}, "werent": {}, "without": {}, "wont": {}, "wouldnt": {},
}

// intensifiers add to the magnitude of the following word.
var intensifiers = map[string]float64{
	"absolutely": 0.293,
	"extremely":  0.293,
	"incredibly": 0.293,
	"really":     0.293,
	"so":         0.293,
	"very":       0.293,
	"barely":     -0.293,
	"slightly":   -0.293,
	"somewhat":   -0.293,
}
