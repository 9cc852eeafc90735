// Package telemetry holds the Prometheus instrumentation for the report
// pipeline and its HTTP surface.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry aggregates every metric the service exposes.
type Registry struct {
	reg *prometheus.Registry

	// StageDuration observes each pipeline stage in seconds.
	StageDuration *prometheus.HistogramVec

	// Reports counts generated reports by outcome (ok, not_found, error).
	Reports *prometheus.CounterVec

	// SourceErrors counts upstream fetch failures by endpoint.
	SourceErrors *prometheus.CounterVec

	// Cache hit/miss counters for the report cache.
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewRegistry creates and registers the service metrics on a private
// Prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "creatorscope_stage_duration_seconds",
				Help:    "Duration of each report pipeline stage in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"stage"},
		),
		Reports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creatorscope_reports_total",
				Help: "Total reports generated by outcome",
			},
			[]string{"outcome"},
		),
		SourceErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creatorscope_source_errors_total",
				Help: "Upstream fetch failures by endpoint",
			},
			[]string{"endpoint"},
		),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "creatorscope_cache_hits_total",
			Help: "Report cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "creatorscope_cache_misses_total",
			Help: "Report cache misses",
		}),
	}

	r.reg.MustRegister(r.StageDuration, r.Reports, r.SourceErrors, r.CacheHits, r.CacheMisses)
	return r
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
