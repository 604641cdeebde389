// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// APIKeyHeader carries a session-scoped weather API key
const APIKeyHeader = "X-Weather-Api-Key"

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
	// DefaultAPIKey is the environment key used when neither the request
	// nor the user's preferences carry one
	DefaultAPIKey string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router              *gin.Engine
	config              ServerConfig
	weatherUseCase      WeatherUseCase
	preferenceUseCase   PreferenceUseCase
	snapshotUseCase     SnapshotUseCase
	suggestionEngine    SuggestionEngine
	systemHealthChecker ports.SystemHealthChecker
	metricsHandler      http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	FetchComposite(ctx context.Context, request weather.WeatherRequest) (*weather.CompositeView, error)
}

type PreferenceUseCase interface {
	NewUserID() string
	Get(ctx context.Context, userID string) (*preferences.Preferences, bool, error)
	Save(ctx context.Context, userID string, patch preferences.Patch) (string, error)
	RecordSearch(ctx context.Context, userID, entry string) ([]string, error)
	SaveLocation(ctx context.Context, userID string, latitude, longitude float64) (string, error)
}

type SnapshotUseCase interface {
	Get(ctx context.Context, location string) (*weather.Snapshot, error)
	Put(ctx context.Context, location string, data json.RawMessage) (*weather.Snapshot, error)
}

type SuggestionEngine interface {
	Suggest(query string, history []string) []suggestion.Suggestion
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	WeatherUseCase      WeatherUseCase
	PreferenceUseCase   PreferenceUseCase
	SnapshotUseCase     SnapshotUseCase
	SuggestionEngine    SuggestionEngine
	SystemHealthChecker ports.SystemHealthChecker
	// MetricsHandler serves /metrics; defaults to the global prometheus registry
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	server := &HTTPServerAdapter{
		router:              gin.Default(),
		config:              opts.Config,
		weatherUseCase:      opts.WeatherUseCase,
		preferenceUseCase:   opts.PreferenceUseCase,
		snapshotUseCase:     opts.SnapshotUseCase,
		suggestionEngine:    opts.SuggestionEngine,
		systemHealthChecker: opts.SystemHealthChecker,
		metricsHandler:      metricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.PreferenceUseCase == nil {
		return errors.NewValidationError("preference use case is required")
	}
	if opts.SnapshotUseCase == nil {
		return errors.NewValidationError("snapshot use case is required")
	}
	if opts.SuggestionEngine == nil {
		return errors.NewValidationError("suggestion engine is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/suggestions", s.getSuggestions)
		api.POST("/users", s.createUser)

		prefs := api.Group("/preferences/:userId")
		prefs.GET("", s.getPreferences)
		prefs.PUT("", s.savePreferences)
		prefs.POST("/history", s.recordSearch)
		prefs.POST("/location", s.saveLocation)

		api.GET("/theme", s.resolveTheme)
		api.GET("/convert", s.convertTemperature)

		api.GET("/cache/:location", s.getCachedWeather)
		api.PUT("/cache/:location", s.putCachedWeather)
	}

	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
