package domain

import (
	"strconv"
	"time"
)

// crashDateLayouts covers the timestamp shapes Socrata has served for
// crash_date over the dataset's lifetime.
var crashDateLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize produces a Dataset from raw Socrata records.
//
// It fails with a SchemaError when a required column is absent from the
// payload entirely. Otherwise it coerces crash_date (unparseable values are
// kept but marked invalid), coerces latitude/longitude (unparseable values
// become missing), and drops records missing latitude, longitude, or
// borough.
func Normalize(records []RawRecord) (Dataset, error) {
	if missing := missingColumns(records); len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	ds := make(Dataset, 0, len(records))
	for _, rec := range records {
		lat, latOK := floatField(rec, ColLatitude)
		lon, lonOK := floatField(rec, ColLongitude)
		borough, _ := rec.stringField(ColBorough)
		if !latOK || !lonOK || borough == "" {
			continue
		}

		a := Accident{
			Latitude:  lat,
			Longitude: lon,
			Borough:   borough,
		}
		a.Street, _ = rec.stringField(ColStreet)

		if raw, ok := rec.stringField(ColCrashDate); ok {
			a.CrashDate, a.DateValid = parseCrashDate(raw)
		}

		ds = append(ds, a)
	}
	return ds, nil
}

// missingColumns returns required columns that no record carries at all.
// A column present on any record counts as part of the schema even when
// most records leave it null.
func missingColumns(records []RawRecord) []string {
	if len(records) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(RequiredColumns))
	for _, rec := range records {
		for _, col := range RequiredColumns {
			if _, ok := rec[col]; ok {
				seen[col] = true
			}
		}
		if len(seen) == len(RequiredColumns) {
			return nil
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !seen[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func parseCrashDate(raw string) (time.Time, bool) {
	for _, layout := range crashDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func floatField(rec RawRecord, key string) (float64, bool) {
	s, ok := rec.stringField(key)
	if !ok || s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
