package stubserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the stub feed service.
type Metrics struct {
	registry       *prometheus.Registry
	requestsTotal  prometheus.Counter
	pagesServed    prometheus.Counter
	reactionsTotal prometheus.Counter
	errorsTotal    prometheus.Counter
	catalogSize    prometheus.Gauge
}

// NewMetrics creates and registers Prometheus metrics for the stub.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ripple_stub_requests_total",
		Help: "Total number of HTTP requests received",
	})
	pagesServed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ripple_stub_pages_served_total",
		Help: "Total number of feed pages served",
	})
	reactionsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ripple_stub_reactions_total",
		Help: "Total number of reactions recorded",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ripple_stub_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})
	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ripple_stub_catalog_size",
		Help: "Number of droplets in the catalog",
	})

	registry.MustRegister(
		requestsTotal,
		pagesServed,
		reactionsTotal,
		errorsTotal,
		catalogSize,
	)

	return &Metrics{
		registry:       registry,
		requestsTotal:  requestsTotal,
		pagesServed:    pagesServed,
		reactionsTotal: reactionsTotal,
		errorsTotal:    errorsTotal,
		catalogSize:    catalogSize,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncPagesServed increments the pages served counter.
func (m *Metrics) IncPagesServed() {
	m.pagesServed.Inc()
}

// IncReactions increments the reactions counter.
func (m *Metrics) IncReactions() {
	m.reactionsTotal.Inc()
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// SetCatalogSize sets the catalog size gauge.
func (m *Metrics) SetCatalogSize(n int) {
	m.catalogSize.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// statusWriter captures the status code for metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestMiddleware returns chi-compatible middleware that records request
// count and error count (status >= 400) in the given Metrics.
func RequestMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrap := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrap, r)
			m.IncRequests()
			if wrap.status >= 400 {
				m.IncErrors()
			}
		})
	}
}
