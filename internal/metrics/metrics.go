// Package metrics exposes Prometheus metrics of the HTTP application.
//
// [Metrics.Setup] mounts the scrape endpoint at GET /metrics;
// [Metrics.Middleware] instruments every request with the chi route pattern
// as the path label to keep cardinality bounded.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-svc/internal/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path is the scrape endpoint.
const Path = "/metrics"

const (
	namespace      = "go_svc"
	unmatchedRoute = "unmatched"
)

// Metrics owns the HTTP collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the HTTP collectors together with the Go and process
// collectors in registry. A nil registry gets a fresh one.
func New(registry *prometheus.Registry) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
	}

	collectorsToRegister := []prometheus.Collector{
		m.inFlight,
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range collectorsToRegister {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Setup mounts the scrape endpoint.
func (m *Metrics) Setup(r chi.Router) error {
	r.Method(http.MethodGet, Path, m.Handler())
	return nil
}

// Operations describes the scrape endpoint for the documentation.
func (m *Metrics) Operations() []docs.Route {
	return []docs.Route{{
		Method: http.MethodGet,
		Path:   Path,
		Operation: docs.Operation{
			Summary:  "Prometheus metrics",
			Tags:     []string{"metrics"},
			Produces: []string{"text/plain"},
			Responses: map[string]docs.Response{
				"200": {Description: "metrics in the Prometheus exposition format"},
			},
		},
	}}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware instruments requests. It must be installed on the root router
// so the route pattern is known once the request has been routed.
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			m.inFlight.Inc()
			defer m.inFlight.Dec()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)
			method := strings.ToUpper(r.Method)

			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	pattern := rctx.RoutePattern()
	if pattern == "" {
		return unmatchedRoute
	}

	return pattern
}
