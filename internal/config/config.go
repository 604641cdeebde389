package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 1440
	maxRequestTimeout   = 120
	maxPortNumber       = 65535
	defaultSupabaseName = "user_preferences"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Store     StoreConfig     `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Geo       GeoConfig       `split_words:"true"`
	Dashboard DashboardConfig `split_words:"true"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherdash"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// StoreType selects the backend of the preference store
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypePostgres
	StoreTypeSupabase
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypePostgres:
		return "postgres"
	case StoreTypeSupabase:
		return "supabase"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypePostgres || s == StoreTypeSupabase
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres":
		return StoreTypePostgres
	case "supabase":
		return StoreTypeSupabase
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type     StoreType      `envconfig:"PREFERENCE_STORE" default:"postgres"`
	Supabase SupabaseConfig `split_words:"true"`
}

type SupabaseConfig struct {
	URL   string `envconfig:"SUPABASE_URL"`
	Key   string `envconfig:"SUPABASE_KEY"`
	Table string `envconfig:"SUPABASE_PREFERENCES_TABLE" default:"user_preferences"`
}

// WeatherConfig configures the WeatherAPI.com provider. APIKey is only the
// environment default; users may bring their own key.
type WeatherConfig struct {
	APIKey                string `envconfig:"WEATHER_API_KEY"`
	BaseURL               string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT" default:"10"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_provider.log"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type       CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	TTLMinutes int         `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
	Redis      RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// GeoConfig selects the geolocation source. An empty Coordinates value means
// IP-based lookup through the weather provider.
type GeoConfig struct {
	Coordinates string `envconfig:"GEO_COORDINATES"`
}

type DashboardConfig struct {
	ScratchPath string `envconfig:"DASHBOARD_SCRATCH_PATH" default:"data/dashboard.db"`
	LogFilePath string `envconfig:"DASHBOARD_LOG_FILE_PATH" default:"logs/dashboard.log"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if c.Store.Type == StoreTypePostgres {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Geo.Validate(); err != nil {
		return err
	}
	if err := c.Dashboard.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("PREFERENCE_STORE must be one of: postgres, supabase", nil)
	}
	if s.Type == StoreTypeSupabase {
		return s.Supabase.Validate()
	}
	return nil
}

func (s *SupabaseConfig) Validate() error {
	if s.URL == "" {
		return errors.NewConfigurationError("SUPABASE_URL cannot be empty when using the supabase store", nil)
	}
	if !strings.HasPrefix(s.URL, "http://") && !strings.HasPrefix(s.URL, "https://") {
		return errors.NewConfigurationError("SUPABASE_URL must start with http:// or https://", nil)
	}
	if s.Key == "" {
		return errors.NewConfigurationError("SUPABASE_KEY cannot be empty when using the supabase store", nil)
	}
	if s.Table == "" {
		s.Table = defaultSupabaseName
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.RequestTimeoutSeconds < 1 || w.RequestTimeoutSeconds > maxRequestTimeout {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT must be between 1 and 120 seconds", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.TTLMinutes < 1 || c.TTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (g *GeoConfig) Validate() error {
	if g.Coordinates == "" {
		return nil
	}
	if _, _, ok := validation.ParseCoordinates(g.Coordinates); !ok {
		return errors.NewConfigurationError("GEO_COORDINATES must be \"lat,lon\" with valid ranges", nil)
	}
	return nil
}

func (d *DashboardConfig) Validate() error {
	if d.ScratchPath == "" {
		return errors.NewConfigurationError("DASHBOARD_SCRATCH_PATH cannot be empty", nil)
	}
	return nil
}
