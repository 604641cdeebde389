package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

// Application is the HTTP API process
type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase    *weather.UseCase
	preferenceUseCase *preferences.UseCase
	snapshotUseCase   *weather.SnapshotUseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	container *DependencyContainer
	ports     *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	container, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, container)
	if err != nil {
		_ = container.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application over an existing container
func NewApplicationWithDependencies(cfg *config.Config, container *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		container: container,
		ports:     container.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	preferenceUseCase, err := preferences.NewUseCase(preferences.UseCaseDependencies{
		Repository: a.ports.PreferenceRepository,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create preference use case: %w", err)
	}
	a.preferenceUseCase = preferenceUseCase

	snapshotUseCase, err := weather.NewSnapshotUseCase(weather.SnapshotUseCaseDependencies{
		Cache:  a.ports.SnapshotCache,
		Logger: a.ports.Logger,
		TTL:    a.ports.ConfigProvider.GetCacheConfig().TTL,
	})
	if err != nil {
		return fmt.Errorf("create snapshot use case: %w", err)
	}
	a.snapshotUseCase = snapshotUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	storeConfig := a.ports.ConfigProvider.GetStoreConfig()
	cacheConfig := a.ports.ConfigProvider.GetCacheConfig()
	weatherConfig := a.ports.ConfigProvider.GetWeatherConfig()

	healthConfig := infrastructure.SystemHealthCheckerConfig{
		StoreChecker:      infrastructure.NewPreferenceStoreHealthChecker(a.ports.PreferenceRepository, storeConfig.Type),
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.WeatherProvider, weatherConfig.APIKey),
		CacheChecker:      infrastructure.NewCacheHealthChecker(a.container.CacheProvider(), cacheConfig.Type),
		ConfigProvider:    a.ports.ConfigProvider,
	}
	if db := a.container.Database(); db != nil {
		healthConfig.DatabaseChecker = infrastructure.NewDatabaseHealthChecker(db)
	}
	systemHealthChecker := infrastructure.NewSystemHealthChecker(healthConfig)

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:          a.config.Server.Port,
			DefaultAPIKey: weatherConfig.APIKey,
		},
		WeatherUseCase:      a.weatherUseCase,
		PreferenceUseCase:   a.preferenceUseCase,
		SnapshotUseCase:     a.snapshotUseCase,
		SuggestionEngine:    suggestion.NewEngine(nil),
		SystemHealthChecker: systemHealthChecker,
		MetricsHandler:      a.container.MetricsCollector().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(_ context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.container.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
