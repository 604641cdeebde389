package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       []ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker.
// Nil checkers are skipped.
type SystemHealthCheckerConfig struct {
	DatabaseChecker   ports.HealthChecker
	StoreChecker      ports.HealthChecker
	WeatherAPIChecker ports.HealthChecker
	CacheChecker      ports.HealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	var checkers []ports.HealthChecker
	for _, c := range []ports.HealthChecker{
		config.DatabaseChecker,
		config.StoreChecker,
		config.WeatherAPIChecker,
		config.CacheChecker,
	} {
		if c != nil {
			checkers = append(checkers, c)
		}
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components, keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for _, checker := range s.checkers {
		status := checker.Check(ctx)
		results[status.Component] = status
	}

	if s.configProvider != nil {
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"preferenceStore": s.configProvider.GetStoreConfig().Type,
				"cacheType":       s.configProvider.GetCacheConfig().Type,
				"weatherBaseURL":  s.configProvider.GetWeatherConfig().BaseURL,
			},
		}
	}

	return results
}

// IsHealthy reports whether every status in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}
