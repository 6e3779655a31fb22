package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the dashboard's Prometheus collectors on a private registry.
type Registry struct {
	registry *prometheus.Registry

	Imports         *prometheus.CounterVec
	ImportedRows    prometheus.Counter
	SkippedRows     prometheus.Counter
	Summaries       *prometheus.CounterVec
	Salespeople     prometheus.Gauge
	RequestDuration *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		Imports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_imports_total",
				Help: "Spreadsheet import attempts by outcome",
			},
			[]string{"outcome"},
		),
		ImportedRows: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "salesboard_imported_rows_total",
				Help: "Daily records accepted from imported spreadsheets",
			},
		),
		SkippedRows: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "salesboard_skipped_rows_total",
				Help: "Spreadsheet rows rejected by the day gate",
			},
		),
		Summaries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_summaries_total",
				Help: "AI summary requests by outcome",
			},
			[]string{"outcome"},
		),
		Salespeople: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "salesboard_salespeople",
				Help: "Salespeople currently in the roster",
			},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salesboard_http_request_duration_seconds",
				Help:    "HTTP request duration by route and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
	}

	r.registry.MustRegister(
		r.Imports,
		r.ImportedRows,
		r.SkippedRows,
		r.Summaries,
		r.Salespeople,
		r.RequestDuration,
	)
	return r
}

// ObserveImport records one import attempt.
func (r *Registry) ObserveImport(outcome string, imported, skipped int) {
	r.Imports.WithLabelValues(outcome).Inc()
	r.ImportedRows.Add(float64(imported))
	r.SkippedRows.Add(float64(skipped))
}

// ObserveSummary records one summary request.
func (r *Registry) ObserveSummary(outcome string) {
	r.Summaries.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
