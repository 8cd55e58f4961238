package usecase

import (
	"time"

	"analytics-srv/internal/model"
)

// partition groups reviews by window. Nested windows share reviews; the input is not modified.
func partition(reviews []model.Review, defs []model.PeriodDefinition, now time.Time) map[int][]model.Review {
	out := make(map[int][]model.Review, len(defs))
	for _, def := range defs {
		if def.IsAllTime() {
			all := make([]model.Review, len(reviews))
			copy(all, reviews)
			out[def.Key] = all
			continue
		}

		start, end := windowBounds(def, now)
		window := make([]model.Review, 0)
		for _, r := range reviews {
			if !r.PublishedAt.Before(start) && !r.PublishedAt.After(end) {
				window = append(window, r)
			}
		}
		out[def.Key] = window
	}
	return out
}

// windowBounds returns the closed interval [start of day now-N, end of day now] in now's location.
func windowBounds(def model.PeriodDefinition, now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	from := now.AddDate(0, 0, -def.Days)
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}
