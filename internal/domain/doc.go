// Package domain models NYC motor vehicle collision data.
//
// # Data Source
//
// Collision records come from the NYC Open Data "Motor Vehicle Collisions -
// Crashes" dataset (Socrata resource h9gi-nx95), served as a JSON array of
// flat objects. Every field arrives as a string; the dataset predates typed
// Socrata columns. The columns this service depends on:
//
//	crash_date      ISO timestamp, e.g. "2023-01-01T00:00:00.000"
//	latitude        decimal degrees, may be empty or absent
//	longitude       decimal degrees, may be empty or absent
//	on_street_name  street the collision occurred on, may be empty
//	borough         one of the five boroughs in uppercase, may be absent
//
// All other columns are passthrough and ignored.
//
// # Normalization Rules
//
// Records are raw JSON objects until Normalize runs. Normalization:
//
//   - fails with a SchemaError when a required column is absent from the
//     payload entirely (no record carries the key) — this is a dataset
//     configuration problem, not a per-record one;
//   - coerces crash_date, keeping records with an unparseable date but
//     marking them invalid so date math skips them;
//   - coerces latitude/longitude, treating unparseable values as missing;
//   - drops records missing latitude, longitude, or borough.
//
// # Aggregation Conventions
//
// The daily average is the mean of per-day group counts: days with zero
// collisions contribute no term, matching how the dataset is reported.
// Modal values are stable — ties break toward the value seen first.
package domain
