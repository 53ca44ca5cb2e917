// Package scoring computes relevance scores for candidate content against a job description.
package scoring

import (
	"math"
	"strings"
	"time"
)

// RecencyParams controls the multiplicative boost applied to recent entries.
// The boost is monotonic in recency and capped, so otherwise-equal recent
// experience always outranks older experience without dominating the score.
type RecencyParams struct {
	// DecayRate is the exponential decay per year since the entry ended
	DecayRate float64 `mapstructure:"decay-rate"`
	// Cap is the multiplier applied to work ending now; must be >= 1
	Cap float64 `mapstructure:"cap"`
}

// recencyMultiplier returns the boost for an entry ending at endDate, relative
// to the scorer's fixed reference date. Ongoing entries get the full cap.
// Malformed dates get a neutral multiplier.
func recencyMultiplier(endDate string, reference time.Time, p RecencyParams) float64 {
	if p.Cap <= 1 {
		return 1.0
	}

	years := 0.0
	if !endsAtPresent(endDate) {
		end, ok := parseEndDate(endDate)
		if !ok {
			return 1.0
		}
		years = reference.Sub(end).Hours() / (24 * 365.25)
		if years < 0 {
			years = 0
		}
	}

	return 1.0 + (p.Cap-1.0)*math.Exp(-p.DecayRate*years)
}

// endsAtPresent reports whether the end date means "still ongoing"
func endsAtPresent(end string) bool {
	switch strings.ToLower(strings.TrimSpace(end)) {
	case "", "present", "current":
		return true
	}
	return false
}

// parseEndDate parses YYYY or YYYY-MM end dates
func parseEndDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// endDateSortKey converts an end date to an integer for chronological
// ordering: higher means more recent, with ongoing entries sorting first.
func endDateSortKey(end string) int {
	if endsAtPresent(end) {
		return 999912
	}
	t, ok := parseEndDate(end)
	if !ok {
		return 0
	}
	return t.Year()*100 + int(t.Month())
}
