package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors of the gateway on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ConversionRequestsTotal *prometheus.CounterVec
	TimeseriesRequestsTotal prometheus.Counter
	CacheLookupsTotal       *prometheus.CounterVec
	UpstreamFetchesTotal    *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		ConversionRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversion_requests_total",
				Help: "Total number of currency conversion requests by outcome",
			},
			[]string{"outcome"},
		),

		TimeseriesRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "timeseries_requests_total",
				Help: "Total number of timeseries requests",
			},
		),

		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payload_cache_lookups_total",
				Help: "Payload cache lookups by kind and result (hit, miss, stale)",
			},
			[]string{"kind", "result"},
		),

		UpstreamFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetches_total",
				Help: "Upstream rate fetches by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer returns the underlying registry, mostly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// ObserveCacheLookup counts one payload cache lookup.
func (m *Metrics) ObserveCacheLookup(kind, result string) {
	if m == nil {
		return
	}
	m.CacheLookupsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveUpstreamFetch counts one upstream call.
func (m *Metrics) ObserveUpstreamFetch(kind string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.UpstreamFetchesTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveConversion counts one conversion by outcome.
func (m *Metrics) ObserveConversion(outcome string) {
	if m == nil {
		return
	}
	m.ConversionRequestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveTimeseries counts one timeseries request.
func (m *Metrics) ObserveTimeseries() {
	if m == nil {
		return
	}
	m.TimeseriesRequestsTotal.Inc()
}
