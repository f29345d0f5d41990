package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report pipeline.
type Metrics struct {
	FetchRequests *prometheus.CounterVec // labels: outcome={success,transport_error,network_error}
	FetchDuration prometheus.Histogram
	CacheLookups  *prometheus.CounterVec // labels: result={hit,miss}

	ReportsServed  *prometheus.CounterVec // labels: outcome={ok,warning,error}
	ReportDuration prometheus.Histogram
	DatasetSize    prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "collision_dashboard",
			Name:      "fetch_requests_total",
			Help:      "Upstream dataset fetches by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "collision_dashboard",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of upstream dataset fetches.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "collision_dashboard",
			Name:      "cache_lookups_total",
			Help:      "Dataset cache lookups by result.",
		}, []string{"result"}),
		ReportsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "collision_dashboard",
			Name:      "reports_served_total",
			Help:      "Reports built by outcome.",
		}, []string{"outcome"}),
		ReportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "collision_dashboard",
			Name:      "report_duration_seconds",
			Help:      "Duration of a complete fetch-normalize-filter-aggregate-compose cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		DatasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "collision_dashboard",
			Name:      "dataset_size",
			Help:      "Number of normalized records in the last fetched dataset.",
		}),
	}

	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.CacheLookups,
		m.ReportsServed,
		m.ReportDuration,
		m.DatasetSize,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "collision_dashboard", Name: "fetch_requests_total"}, []string{"outcome"}),
		FetchDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "collision_dashboard", Name: "fetch_duration_seconds"}),
		CacheLookups:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "collision_dashboard", Name: "cache_lookups_total"}, []string{"result"}),
		ReportsServed:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "collision_dashboard", Name: "reports_served_total"}, []string{"outcome"}),
		ReportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "collision_dashboard", Name: "report_duration_seconds"}),
		DatasetSize:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "collision_dashboard", Name: "dataset_size"}),
	}
}
