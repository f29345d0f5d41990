package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange rejects date ranges where start is after end. The source
// dataset has no policy here; silently returning an empty result would hide
// caller bugs, so inverted ranges are treated as validation failures.
var ErrInvalidRange = errors.New("start date is after end date")

// TransportError reports a non-success HTTP status from the data source.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch data: status code %d", e.StatusCode)
}

// SchemaError reports required columns missing from the fetched payload.
// This halts the pipeline: no dataset can be produced from it.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "dataset is missing required columns: " + strings.Join(e.Missing, ", ")
}
