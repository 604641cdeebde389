package infrastructure

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "weatherdash"

// PrometheusMetricsCollector implements the MetricsCollector port on top of
// a prometheus registry
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	cacheHitRatio prometheus.Gauge
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	apiCalls      *prometheus.CounterVec
	preferenceOps *prometheus.CounterVec

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewPrometheusMetricsCollector registers the dashboard metrics on a fresh registry.
// Passing nil registers the Go and process collectors alongside them.
func NewPrometheusMetricsCollector(registry *prometheus.Registry) *PrometheusMetricsCollector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		)
	}
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "weather_cache_hits_total",
			Help:      "The total number of weather cache hits",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "weather_cache_misses_total",
			Help:      "The total number of weather cache misses",
		}),
		cacheHitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "weather_cache_hit_ratio",
			Help:      "Weather cache hit ratio (hits/total lookups)",
		}),
		fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "weather_fetches_total",
			Help:      "Composite weather fetches by outcome",
		}, []string{"outcome"}),
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "weather_fetch_duration_seconds",
			Help:      "Composite weather fetch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		apiCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "weather_api_calls_total",
			Help:      "Requests sent to the weather provider",
		}, []string{"provider", "success"}),
		preferenceOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "preference_operations_total",
			Help:      "Preference store operations",
		}, []string{"operation", "success"}),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	m.cacheHits.Inc()
	m.mu.Lock()
	m.hits++
	m.updateHitRatio()
	m.mu.Unlock()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	m.cacheMisses.Inc()
	m.mu.Lock()
	m.misses++
	m.updateHitRatio()
	m.mu.Unlock()
}

// updateHitRatio must be called while holding the mutex.
func (m *PrometheusMetricsCollector) updateHitRatio() {
	total := m.hits + m.misses
	if total > 0 {
		m.cacheHitRatio.Set(float64(m.hits) / float64(total))
	}
}

func (m *PrometheusMetricsCollector) RecordWeatherFetch(ctx context.Context, outcome string, duration time.Duration) {
	m.fetches.WithLabelValues(outcome).Inc()
	m.fetchDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordWeatherAPICall(ctx context.Context, provider string, success bool) {
	m.apiCalls.WithLabelValues(provider, strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetricsCollector) RecordPreferenceOperation(ctx context.Context, operation string, success bool) {
	m.preferenceOps.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

// Registry exposes the underlying registry for scraping and tests
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler serving this collector's registry
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
