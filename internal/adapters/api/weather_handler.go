package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/pkg/errors"
)

// WeatherResponse represents the HTTP response for a composite weather view
type WeatherResponse struct {
	Weather   *weather.CompositeView `json:"weather"`
	KeySource string                 `json:"keySource"`
}

// SuggestionsResponse represents the ranked suggestion list
type SuggestionsResponse struct {
	Query       string                  `json:"query"`
	Suggestions []suggestion.Suggestion `json:"suggestions"`
}

// ConvertResponse represents a converted temperature
type ConvertResponse struct {
	Celsius float64 `json:"celsius"`
	Unit    string  `json:"unit"`
	Symbol  string  `json:"symbol"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// CacheRequest is the body of PUT /api/cache/:location
type CacheRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

// CacheResponse represents a cached weather blob
type CacheResponse struct {
	Location  string          `json:"location"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		s.handleError(c, errors.NewValidationError("q parameter is required"))
		return
	}

	prefs := s.optionalPreferences(c, c.Query("userId"))
	sources := preferences.APIKeySources{
		Session:     c.GetHeader(APIKeyHeader),
		Environment: s.config.DefaultAPIKey,
	}
	if prefs != nil {
		sources.Preference = prefs.APIKey
	}
	apiKey, keySource := sources.Resolve()

	slog.Debug("Getting weather", "query", query, "keySource", keySource.String())

	view, err := s.weatherUseCase.FetchComposite(c.Request.Context(), weather.WeatherRequest{
		Query:  query,
		APIKey: apiKey,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{Weather: view, KeySource: keySource.String()})
}

// getSuggestions handles GET /api/suggestions requests
func (s *HTTPServerAdapter) getSuggestions(c *gin.Context) {
	query := c.Query("q")

	var history []string
	if prefs := s.optionalPreferences(c, c.Query("userId")); prefs != nil {
		history = prefs.SearchHistory
	}

	c.JSON(http.StatusOK, SuggestionsResponse{
		Query:       strings.TrimSpace(query),
		Suggestions: s.suggestionEngine.Suggest(query, history),
	})
}

// convertTemperature handles GET /api/convert requests
func (s *HTTPServerAdapter) convertTemperature(c *gin.Context) {
	raw := c.Query("celsius")
	if raw == "" {
		s.handleError(c, errors.NewValidationError("celsius parameter is required"))
		return
	}
	celsius, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.handleError(c, errors.NewValidationError("celsius must be a number"))
		return
	}

	unit := weather.UnitCelsius
	if rawUnit := c.Query("unit"); rawUnit != "" {
		if unit, err = weather.ParseTemperatureUnit(rawUnit); err != nil {
			s.handleError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, ConvertResponse{
		Celsius: celsius,
		Unit:    string(unit),
		Symbol:  unit.Symbol(),
		Value:   weather.ConvertTemperature(celsius, unit),
		Display: weather.FormatTemperatureValue(celsius, unit),
	})
}

// getCachedWeather handles GET /api/cache/:location requests
func (s *HTTPServerAdapter) getCachedWeather(c *gin.Context) {
	snapshot, err := s.snapshotUseCase.Get(c.Request.Context(), c.Param("location"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCacheResponse(snapshot))
}

// putCachedWeather handles PUT /api/cache/:location requests
func (s *HTTPServerAdapter) putCachedWeather(c *gin.Context) {
	var req CacheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	snapshot, err := s.snapshotUseCase.Put(c.Request.Context(), c.Param("location"), req.Data)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCacheResponse(snapshot))
}

func toCacheResponse(snapshot *weather.Snapshot) CacheResponse {
	return CacheResponse{
		Location:  snapshot.Location,
		Data:      snapshot.Data,
		Timestamp: snapshot.Timestamp,
	}
}

// optionalPreferences loads the preferences of userID when one is given.
// Lookup failures are logged and treated as "no preferences".
func (s *HTTPServerAdapter) optionalPreferences(c *gin.Context, userID string) *preferences.Preferences {
	if strings.TrimSpace(userID) == "" {
		return nil
	}

	prefs, found, err := s.preferenceUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("Ignoring preference lookup failure", "userId", userID, "error", err)
		return nil
	}
	if !found {
		return nil
	}
	return prefs
}
