package domain

import "time"

// DateRange is an inclusive [Start, End] interval at day granularity.
// Construct with NewDateRange so the bounds are validated and truncated.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a day-granularity range, rejecting inverted bounds
// with ErrInvalidRange.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: truncateToDay(start), End: truncateToDay(end)}
	if r.Start.After(r.End) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// Contains reports whether t falls within the range, compared at day
// granularity.
func (r DateRange) Contains(t time.Time) bool {
	day := truncateToDay(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// FilterByRange returns the subsequence of ds whose crash date falls within
// the range. Records with an invalid crash date never match. Order is
// preserved; the result shares no backing storage with the input.
func FilterByRange(ds Dataset, r DateRange) Dataset {
	var out Dataset
	for _, a := range ds {
		if a.DateValid && r.Contains(a.CrashDate) {
			out = append(out, a)
		}
	}
	return out
}
