package usecase

import (
	"math"
	"strings"

	"analytics-srv/internal/model"
)

const (
	urgencyMixedRating    = 7
	urgencyNegativeText   = 8
	urgencyComplaintTerms = 9
	strongNegative        = -0.5
)

var complaintTerms = []string{"complaint", "issue"}

// urgency rates how soon the owner should respond, 3..10.
func urgency(text string, score float64, rating *float64) int {
	u := model.MinUrgency

	if rating != nil {
		switch {
		case *rating <= 2:
			u = model.MaxUrgency
		case math.Round(*rating) == 3:
			u = urgencyMixedRating
		}
	}

	if score < strongNegative {
		u = max(u, urgencyNegativeText)
	}

	lower := strings.ToLower(text)
	for _, term := range complaintTerms {
		if strings.Contains(lower, term) {
			u = max(u, urgencyComplaintTerms)
			break
		}
	}

	return u
}
