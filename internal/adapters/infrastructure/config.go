package infrastructure

import (
	"time"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns weather provider configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		APIKey:         c.config.Weather.APIKey,
		BaseURL:        c.config.Weather.BaseURL,
		RequestTimeout: time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Host:     c.config.Database.Host,
		Port:     c.config.Database.Port,
		User:     c.config.Database.User,
		Password: c.config.Database.Password,
		Name:     c.config.Database.Name,
		SSLMode:  c.config.Database.SSLMode,
	}
}

// GetStoreConfig returns preference store configuration
func (c *ConfigProviderAdapter) GetStoreConfig() ports.StoreConfig {
	return ports.StoreConfig{
		Type:          c.config.Store.Type.String(),
		SupabaseURL:   c.config.Store.Supabase.URL,
		SupabaseKey:   c.config.Store.Supabase.Key,
		SupabaseTable: c.config.Store.Supabase.Table,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		TTL:  time.Duration(c.config.Cache.TTLMinutes) * time.Minute,
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

// GetGeoConfig returns geolocation configuration
func (c *ConfigProviderAdapter) GetGeoConfig() ports.GeoConfig {
	return ports.GeoConfig{
		Coordinates: c.config.Geo.Coordinates,
	}
}

// GetDashboardConfig returns terminal dashboard configuration
func (c *ConfigProviderAdapter) GetDashboardConfig() ports.DashboardConfig {
	return ports.DashboardConfig{
		ScratchPath: c.config.Dashboard.ScratchPath,
		LogFilePath: c.config.Dashboard.LogFilePath,
	}
}
