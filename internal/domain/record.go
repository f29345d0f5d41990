package domain

import "time"

// Required Socrata columns. Normalize reports a SchemaError when any of
// these is missing from the payload entirely.
const (
	ColCrashDate = "crash_date"
	ColLatitude  = "latitude"
	ColLongitude = "longitude"
	ColStreet    = "on_street_name"
	ColBorough   = "borough"
)

// RequiredColumns lists the columns the pipeline depends on.
var RequiredColumns = []string{ColCrashDate, ColLatitude, ColLongitude, ColStreet, ColBorough}

// RawRecord is one undecoded collision object as served by Socrata.
// Values are kept loose because the dataset serves everything as strings
// and carries dozens of passthrough columns this service never reads.
type RawRecord map[string]any

// stringField returns the record's value for key as a string. The second
// return is false when the key is absent, null, or not string-shaped.
func (r RawRecord) stringField(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Accident is one normalized collision record.
type Accident struct {
	CrashDate time.Time `json:"crash_date"`
	// DateValid is false when crash_date could not be parsed. Such records
	// survive normalization but are excluded from date-based computations.
	DateValid bool    `json:"-"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Street    string  `json:"on_street_name,omitempty"`
	Borough   string  `json:"borough"`
}

// Dataset is an ordered collection of normalized accidents. After
// Normalize, every element has coordinates and a borough.
type Dataset []Accident

// DateSpan returns the earliest and latest valid crash dates, truncated to
// day granularity. ok is false when no record has a valid date.
func (d Dataset) DateSpan() (min, max time.Time, ok bool) {
	for _, a := range d {
		if !a.DateValid {
			continue
		}
		day := truncateToDay(a.CrashDate)
		if !ok {
			min, max, ok = day, day, true
			continue
		}
		if day.Before(min) {
			min = day
		}
		if day.After(max) {
			max = day
		}
	}
	return min, max, ok
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
