package domain

import "time"

// UnknownValue is reported when a modal statistic has no usable values,
// e.g. a filtered dataset whose street column is entirely empty.
const UnknownValue = "unknown"

// SummaryStats is a derived view over a filtered dataset. It has no
// lifecycle of its own; callers recompute it whenever the filter changes.
type SummaryStats struct {
	TotalAccidents    int     `json:"total_accidents"`
	AvgPerDay         float64 `json:"avg_per_day"`
	MostCommonStreet  string  `json:"most_common_street"`
	MostCommonBorough string  `json:"most_common_borough"`
}

// Summarize computes summary statistics for a dataset. The daily average
// is the mean of per-day counts over days that actually have records.
// Modal statistics fall back to UnknownValue when the column is entirely
// empty — the source dataset leaves on_street_name blank for intersection
// collisions, so this case is reachable even on nonempty input.
func Summarize(ds Dataset) SummaryStats {
	stats := SummaryStats{
		TotalAccidents:    len(ds),
		MostCommonStreet:  UnknownValue,
		MostCommonBorough: UnknownValue,
	}

	perDay := make(map[time.Time]int)
	var streets, boroughs []string
	for _, a := range ds {
		if a.DateValid {
			perDay[truncateToDay(a.CrashDate)]++
		}
		if a.Street != "" {
			streets = append(streets, a.Street)
		}
		if a.Borough != "" {
			boroughs = append(boroughs, a.Borough)
		}
	}

	if len(perDay) > 0 {
		var total int
		for _, n := range perDay {
			total += n
		}
		stats.AvgPerDay = float64(total) / float64(len(perDay))
	}

	if mode, ok := stableMode(streets); ok {
		stats.MostCommonStreet = mode
	}
	if mode, ok := stableMode(boroughs); ok {
		stats.MostCommonBorough = mode
	}
	return stats
}

// stableMode returns the most frequent value, breaking ties toward the
// value encountered first. ok is false on empty input.
func stableMode(values []string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	counts := make(map[string]int, len(values))
	maxCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > maxCount {
			maxCount = counts[v]
		}
	}
	// First value in encounter order holding the max count wins ties.
	for _, v := range values {
		if counts[v] == maxCount {
			return v, true
		}
	}
	return "", false
}
