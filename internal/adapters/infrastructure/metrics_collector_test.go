package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
)

func TestPrometheusMetricsCollector_CacheCounters(t *testing.T) {
	collector := NewPrometheusMetricsCollector(prometheus.NewRegistry())
	ctx := context.Background()

	collector.RecordCacheHit(ctx)
	collector.RecordCacheHit(ctx)
	collector.RecordCacheHit(ctx)
	collector.RecordCacheMiss(ctx)

	assert.Equal(t, 3.0, testutil.ToFloat64(collector.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.cacheMisses))
	assert.InDelta(t, 0.75, testutil.ToFloat64(collector.cacheHitRatio), 1e-9)
}

func TestPrometheusMetricsCollector_Labels(t *testing.T) {
	collector := NewPrometheusMetricsCollector(prometheus.NewRegistry())
	ctx := context.Background()

	collector.RecordWeatherFetch(ctx, ports.FetchOutcomeSuccess, 120*time.Millisecond)
	collector.RecordWeatherFetch(ctx, ports.FetchOutcomeSuccess, 80*time.Millisecond)
	collector.RecordWeatherFetch(ctx, ports.FetchOutcomeFetchError, time.Second)
	collector.RecordWeatherAPICall(ctx, "weatherapi", true)
	collector.RecordWeatherAPICall(ctx, "weatherapi", false)
	collector.RecordPreferenceOperation(ctx, "upsert", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.fetches.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.fetches.WithLabelValues("fetch_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.apiCalls.WithLabelValues("weatherapi", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.preferenceOps.WithLabelValues("upsert", "true")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.fetchDuration))
}

func TestPrometheusMetricsCollector_Handler(t *testing.T) {
	collector := NewPrometheusMetricsCollector(nil)
	collector.RecordCacheMiss(context.Background())

	server := httptest.NewServer(collector.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "weatherdash_weather_cache_misses_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestPrometheusMetricsCollector_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
		NewPrometheusMetricsCollector(prometheus.NewRegistry())
	})
}
