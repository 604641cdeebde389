package app

import (
	"fmt"
	"io"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/adapters/supabase"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
)

// DependencyContainer builds and owns the adapters behind the application ports
type DependencyContainer struct {
	config  *config.Config
	options DependencyOptions

	db             *gorm.DB
	cacheProvider  ports.CacheProvider
	weatherAPI     *external.WeatherAPIProviderAdapter
	metrics        *infrastructure.PrometheusMetricsCollector
	configProvider *infrastructure.ConfigProviderAdapter
	ports          *ports.ApplicationPorts
	closers        []io.Closer
}

type DependencyOptions struct {
	// Logger replaces the stdout JSON logger
	Logger ports.Logger
	// SkipCache leaves the weather snapshot cache out, for front-ends that
	// never serve it
	SkipCache bool
	// Quiet silences the ORM's own stdout logger
	Quiet bool
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{
		config:         cfg,
		options:        opts,
		configProvider: infrastructure.NewConfigProviderAdapter(cfg),
		ports:          &ports.ApplicationPorts{},
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"logger", container.initializeLogger},
		{"metrics", container.initializeMetrics},
		{"preference store", container.initializePreferenceStore},
		{"cache", container.initializeCache},
		{"weather provider", container.initializeWeather},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			_ = container.Cleanup()
			return nil, fmt.Errorf("initialize %s: %w", step.name, err)
		}
	}

	container.ports.ConfigProvider = container.configProvider
	return container, nil
}

func (c *DependencyContainer) initializeLogger() error {
	if c.options.Logger != nil {
		c.ports.Logger = c.options.Logger
		return nil
	}
	c.ports.Logger = infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(logger.ParseLevel(c.config.LogLevel)))
	return nil
}

func (c *DependencyContainer) initializeMetrics() error {
	c.metrics = infrastructure.NewPrometheusMetricsCollector(nil)
	c.ports.Metrics = c.metrics
	return nil
}

func (c *DependencyContainer) initializePreferenceStore() error {
	log := c.ports.Logger
	store := c.configProvider.GetStoreConfig()

	switch c.config.Store.Type {
	case config.StoreTypePostgres:
		log.Info("Initializing database connection...")

		gormConfig := &gorm.Config{}
		if c.options.Quiet {
			gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
		}

		db, err := gorm.Open(postgres.Open(c.config.Database.GetDSN()), gormConfig)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		c.db = db

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		c.ports.PreferenceRepository = database.NewPreferenceRepositoryAdapter(db)
		log.Info("Database connection established successfully")

	case config.StoreTypeSupabase:
		repo, err := supabase.NewPreferenceRepository(supabase.PreferenceRepositoryDependencies{
			URL:    store.SupabaseURL,
			Key:    store.SupabaseKey,
			Table:  store.SupabaseTable,
			Logger: log,
		})
		if err != nil {
			return err
		}
		c.ports.PreferenceRepository = repo

	default:
		return fmt.Errorf("unsupported preference store: %q", store.Type)
	}

	return nil
}

func (c *DependencyContainer) initializeCache() error {
	if c.options.SkipCache {
		return nil
	}

	cacheConfig := c.configProvider.GetCacheConfig()
	provider, err := external.NewCacheProviderFactory().CreateCacheProvider(&cacheConfig)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheProvider = provider
	if closer, ok := provider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	c.ports.SnapshotCache = external.NewWeatherCacheAdapter(provider, c.metrics)
	c.ports.Logger.Info("Cache provider initialized",
		ports.F("type", cacheConfig.Type),
		ports.F("redis_addr", cacheConfig.Redis.Addr))
	return nil
}

func (c *DependencyContainer) initializeWeather() error {
	log := c.ports.Logger
	weatherConfig := c.configProvider.GetWeatherConfig()

	weatherAPI, err := external.NewWeatherAPIProviderAdapter(external.WeatherAPIProviderParams{
		BaseURL: weatherConfig.BaseURL,
		Timeout: weatherConfig.RequestTimeout,
		Logger:  log,
	})
	if err != nil {
		return err
	}
	c.weatherAPI = weatherAPI

	var provider ports.WeatherProvider = weatherAPI
	if c.config.Weather.EnableLogging {
		providerLogger := log
		if path := c.config.Weather.LogFilePath; path != "" {
			fileLogger, err := infrastructure.NewFileLoggerAdapter(path, slog.LevelInfo)
			if err != nil {
				log.Warn("Failed to create provider file logger, using application logger", ports.F("error", err))
			} else {
				c.closers = append(c.closers, fileLogger)
				providerLogger = fileLogger
				log.Info("Weather provider file logging enabled", ports.F("path", path))
			}
		}
		provider = external.NewWeatherProviderLoggingDecorator(provider, providerLogger, c.metrics)
	}
	c.ports.WeatherProvider = provider

	if coordinates := c.configProvider.GetGeoConfig().Coordinates; coordinates != "" {
		geolocator, err := external.NewStaticGeolocator(coordinates)
		if err != nil {
			return fmt.Errorf("GEO_COORDINATES: %w", err)
		}
		c.ports.Geolocator = geolocator
		log.Info("Using fixed coordinates for geolocation", ports.F("coordinates", coordinates))
		return nil
	}

	geolocator, err := external.NewIPGeolocator(weatherAPI)
	if err != nil {
		return err
	}
	c.ports.Geolocator = geolocator
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// CacheProvider returns the generic cache behind the snapshot cache, or nil
// when the cache was skipped.
func (c *DependencyContainer) CacheProvider() ports.CacheProvider {
	return c.cacheProvider
}

func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup closes connections and log files. It is safe to call more than once.
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		c.db = nil
	}
	return firstErr
}
