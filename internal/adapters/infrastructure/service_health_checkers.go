package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	healthProbeUserID   = "health-probe"
	healthProbeCacheKey = "health:probe"
)

// WeatherAPIHealthChecker reports whether a weather provider is wired and
// whether an environment default key exists. It does not spend API quota.
type WeatherAPIHealthChecker struct {
	provider      ports.WeatherProvider
	keyConfigured bool
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(provider ports.WeatherProvider, defaultAPIKey string) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{provider: provider, keyConfigured: defaultAPIKey != ""}
}

// Check verifies weather API availability
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"defaultKeyConfigured": w.keyConfigured,
		},
	}

	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	status.Details["provider"] = w.provider.GetProviderName()
	return status
}

// PreferenceStoreHealthChecker probes the preference repository with a lookup
// that is expected to miss. NOT_FOUND counts as healthy.
type PreferenceStoreHealthChecker struct {
	repository ports.PreferenceRepository
	backend    string
}

// NewPreferenceStoreHealthChecker creates a new preference store health checker
func NewPreferenceStoreHealthChecker(repository ports.PreferenceRepository, backend string) *PreferenceStoreHealthChecker {
	return &PreferenceStoreHealthChecker{repository: repository, backend: backend}
}

// Check verifies the preference store answers queries
func (p *PreferenceStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "preferenceStore",
		Details:   map[string]interface{}{"backend": p.backend},
	}

	if p.repository == nil {
		status.Status = statusUnhealthy
		status.Error = "preference repository is not available"
		return status
	}

	_, err := p.repository.FindByUserID(ctx, healthProbeUserID)
	if err != nil && !errors.IsNotFoundError(err) {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	return status
}

// CacheHealthChecker checks the weather cache backend with an existence probe
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

// Check verifies the cache backend responds
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.cache == nil {
		status.Status = statusUnhealthy
		status.Error = "cache provider is not available"
		return status
	}

	if _, err := c.cache.Exists(ctx, healthProbeCacheKey); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	if metrics, ok := c.cache.(ports.CacheMetrics); ok {
		stats := metrics.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hitRatio"] = stats.HitRatio
	}

	status.Status = statusHealthy
	return status
}
