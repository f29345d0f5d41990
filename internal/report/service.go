// Package report orchestrates the accident report pipeline: fetch (cached),
// normalize, filter by date range, aggregate, and compose the map scene.
package report

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/rk-304/nyc-collision-dashboard/internal/adapter/socrata"
	"github.com/rk-304/nyc-collision-dashboard/internal/boundary"
	"github.com/rk-304/nyc-collision-dashboard/internal/deckgl"
	"github.com/rk-304/nyc-collision-dashboard/internal/domain"
	"github.com/rk-304/nyc-collision-dashboard/internal/observability"
)

// PreviewLimit caps the table preview rows in a report.
const PreviewLimit = 5

// PreviewRow is one line of the filtered-data preview table.
type PreviewRow struct {
	CrashDate string  `json:"crash_date"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Report is the complete response for one date-range query. Failures never
// escape as errors: Error and Warning carry the user-visible message and
// the affected sections are simply absent.
type Report struct {
	Range   *domain.DateRange    `json:"range,omitempty"`
	Preview []PreviewRow         `json:"preview,omitempty"`
	Stats   *domain.SummaryStats `json:"stats,omitempty"`
	Scene   *deckgl.Scene        `json:"scene,omitempty"`
	Warning string               `json:"warning,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// Service builds reports over the collision dataset.
type Service struct {
	fetcher    socrata.Fetcher
	boundaries boundary.Provider
	logger     *slog.Logger
	metrics    *observability.Metrics
	ready      atomic.Bool
}

// New creates a report Service. The fetcher is expected to be cached; the
// service calls it on every report.
func New(fetcher socrata.Fetcher, boundaries boundary.Provider, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		fetcher:    fetcher,
		boundaries: boundaries,
		logger:     logger,
		metrics:    metrics,
	}
}

// CheckReadiness returns nil once a dataset has been fetched and normalized
// successfully at least once.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no dataset has been loaded yet")
	}
	return nil
}

// DatasetRange returns the dataset's full crash-date span, used as the
// default bounds for the UI date pickers.
func (s *Service) DatasetRange(ctx context.Context) (domain.DateRange, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return domain.DateRange{}, err
	}
	min, max, ok := ds.DateSpan()
	if !ok {
		return domain.DateRange{}, errors.New("dataset has no valid crash dates")
	}
	return domain.DateRange{Start: min, End: max}, nil
}

// BuildReport runs the full pipeline for the requested range. Zero start or
// end values default to the dataset's own span. The returned Report always
// carries something displayable; data-shaped failures land in Error or
// Warning instead of aborting.
func (s *Service) BuildReport(ctx context.Context, start, end time.Time) Report {
	began := time.Now()
	r := s.buildReport(ctx, start, end)
	s.metrics.ReportDuration.Observe(time.Since(began).Seconds())

	switch {
	case r.Error != "":
		s.metrics.ReportsServed.WithLabelValues("error").Inc()
	case r.Warning != "":
		s.metrics.ReportsServed.WithLabelValues("warning").Inc()
	default:
		s.metrics.ReportsServed.WithLabelValues("ok").Inc()
	}
	return r
}

func (s *Service) buildReport(ctx context.Context, start, end time.Time) Report {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return Report{Error: err.Error()}
	}
	if len(ds) == 0 {
		return Report{Error: "no accident data found"}
	}

	rng, err := s.resolveRange(ds, start, end)
	if err != nil {
		return Report{Error: err.Error()}
	}

	filtered := domain.FilterByRange(ds, rng)
	if len(filtered) == 0 {
		return Report{
			Range:   &rng,
			Warning: "no accidents found for the selected date range",
		}
	}

	stats := domain.Summarize(filtered)
	r := Report{
		Range:   &rng,
		Preview: previewRows(filtered),
		Stats:   &stats,
	}

	if scene, ok := deckgl.Compose(filtered, stats.MostCommonBorough, s.boundaries); ok {
		r.Scene = &scene
	}

	s.logger.Debug("report built",
		"start", rng.Start.Format(time.DateOnly),
		"end", rng.End.Format(time.DateOnly),
		"total", stats.TotalAccidents,
	)
	return r
}

// loadDataset fetches (through the cache) and normalizes the dataset,
// recording fetch metrics by outcome.
func (s *Service) loadDataset(ctx context.Context) (domain.Dataset, error) {
	began := time.Now()
	records, err := s.fetcher.Fetch(ctx)
	s.metrics.FetchDuration.Observe(time.Since(began).Seconds())

	if err != nil {
		var transportErr *domain.TransportError
		if errors.As(err, &transportErr) {
			s.metrics.FetchRequests.WithLabelValues("transport_error").Inc()
		} else {
			s.metrics.FetchRequests.WithLabelValues("network_error").Inc()
		}
		s.logger.Error("dataset fetch failed", "error", err)
		return nil, err
	}
	s.metrics.FetchRequests.WithLabelValues("success").Inc()

	ds, err := domain.Normalize(records)
	if err != nil {
		s.logger.Error("dataset normalization failed", "error", err)
		return nil, err
	}

	s.metrics.DatasetSize.Set(float64(len(ds)))
	if len(ds) > 0 {
		s.ready.Store(true)
	}
	return ds, nil
}

// resolveRange fills missing bounds from the dataset span and validates.
func (s *Service) resolveRange(ds domain.Dataset, start, end time.Time) (domain.DateRange, error) {
	if start.IsZero() || end.IsZero() {
		min, max, ok := ds.DateSpan()
		if !ok {
			return domain.DateRange{}, errors.New("dataset has no valid crash dates")
		}
		if start.IsZero() {
			start = min
		}
		if end.IsZero() {
			end = max
		}
	}
	return domain.NewDateRange(start, end)
}

func previewRows(ds domain.Dataset) []PreviewRow {
	n := len(ds)
	if n > PreviewLimit {
		n = PreviewLimit
	}
	rows := make([]PreviewRow, n)
	for i := 0; i < n; i++ {
		rows[i] = PreviewRow{
			CrashDate: ds[i].CrashDate.Format(time.DateOnly),
			Latitude:  ds[i].Latitude,
			Longitude: ds[i].Longitude,
		}
	}
	return rows
}
