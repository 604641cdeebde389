package ports

import (
	"context"
	"time"
)

// WeatherConfig represents weather provider configuration
type WeatherConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// StoreConfig represents preference store configuration
type StoreConfig struct {
	Type          string
	SupabaseURL   string
	SupabaseKey   string
	SupabaseTable string
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	TTL   time.Duration
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// GeoConfig represents geolocation configuration
type GeoConfig struct {
	Coordinates string
}

// DashboardConfig represents terminal dashboard configuration
type DashboardConfig struct {
	ScratchPath string
	LogFilePath string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetStoreConfig() StoreConfig
	GetCacheConfig() CacheConfig
	GetGeoConfig() GeoConfig
	GetDashboardConfig() DashboardConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Weather fetch outcomes reported to MetricsCollector
const (
	FetchOutcomeSuccess     = "success"
	FetchOutcomeConfigError = "config_error"
	FetchOutcomeFetchError  = "fetch_error"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordWeatherFetch(ctx context.Context, outcome string, duration time.Duration)
	RecordWeatherAPICall(ctx context.Context, provider string, success bool)
	RecordPreferenceOperation(ctx context.Context, operation string, success bool)
}
