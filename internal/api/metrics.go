package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/fantasyname/pkg/patternlib"
)

// Metrics holds the service collectors. Each Metrics owns its registry so
// tests and multiple routers never clash on registration.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	names           *prometheus.CounterVec
	compileErrors   prometheus.Counter
}

// NewMetrics registers the collectors on reg. A nil reg creates a fresh
// registry. When lib is non-nil its cache counters are exported too.
func NewMetrics(reg *prometheus.Registry, lib *patternlib.Library) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "namegen_http_requests_total",
			Help: "HTTP requests served, by route, method and status code.",
		}, []string{"route", "method", "code"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "namegen_http_request_duration_seconds",
			Help:    "HTTP request latency, by route.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),
		names: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "namegen_names_generated_total",
			Help: "Names generated, by origin (preset or pattern).",
		}, []string{"origin"}),
		compileErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "namegen_compile_errors_total",
			Help: "Patterns rejected with a syntax error.",
		}),
	}

	if lib != nil {
		factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "namegen_pattern_cache_hits_total",
			Help: "Compiled pattern cache hits.",
		}, func() float64 { return float64(lib.Stats().Hits) })
		factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "namegen_pattern_cache_misses_total",
			Help: "Compiled pattern cache misses.",
		}, func() float64 { return float64(lib.Stats().Misses) })
		factory.NewCounterFunc(prometheus.CounterOpts{
			Name: "namegen_pattern_cache_evictions_total",
			Help: "Compiled pattern cache evictions.",
		}, func() float64 { return float64(lib.Stats().Evictions) })
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "namegen_patterns_registered",
			Help: "Named patterns in the library.",
		}, func() float64 { return float64(lib.Len()) })
	}
	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency labelled by chi route
// pattern, which keeps label cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) generated(origin string, n int) {
	m.names.WithLabelValues(origin).Add(float64(n))
}

func (m *Metrics) compileFailed() {
	m.compileErrors.Inc()
}
