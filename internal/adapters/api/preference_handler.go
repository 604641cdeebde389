package api

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/pkg/errors"
)

// PreferencesRequest is a merge-patch of a preference record. Absent fields
// are left unchanged.
type PreferencesRequest struct {
	TemperatureUnit *string        `json:"temperatureUnit" binding:"omitempty,temperature_unit"`
	Theme           *string        `json:"theme" binding:"omitempty,theme"`
	Location        *string        `json:"location" binding:"omitempty,max=200"`
	Latitude        *float64       `json:"latitude" binding:"omitempty,latitude"`
	Longitude       *float64       `json:"longitude" binding:"omitempty,longitude"`
	APIKey          *string        `json:"apiKey" binding:"omitempty,max=128"`
	ThemePreset     *string        `json:"themePreset" binding:"omitempty,theme_preset"`
	CustomTheme     *theme.Palette `json:"customTheme"`
	SearchHistory   []string       `json:"searchHistory"`
}

// PreferencesResponse represents a stored preference record
type PreferencesResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	TemperatureUnit string         `json:"temperatureUnit"`
	Theme           string         `json:"theme"`
	Location        string         `json:"location,omitempty"`
	Latitude        *float64       `json:"latitude,omitempty"`
	Longitude       *float64       `json:"longitude,omitempty"`
	APIKey          string         `json:"apiKey,omitempty"`
	ThemePreset     string         `json:"themePreset,omitempty"`
	CustomTheme     *theme.Palette `json:"customTheme,omitempty"`
	SearchHistory   []string       `json:"searchHistory"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// HistoryRequest is the body of POST /api/preferences/:userId/history
type HistoryRequest struct {
	Entry string `json:"entry" binding:"required,max=200"`
}

// LocationRequest is the body of POST /api/preferences/:userId/location
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

// SaveResponse carries the stable record id returned by a save
type SaveResponse struct {
	ID string `json:"id"`
}

// createUser handles POST /api/users requests
func (s *HTTPServerAdapter) createUser(c *gin.Context) {
	userID := s.preferenceUseCase.NewUserID()
	slog.Debug("Generated user id", "userId", userID)
	c.JSON(http.StatusCreated, gin.H{"userId": userID})
}

// getPreferences handles GET /api/preferences/:userId requests
func (s *HTTPServerAdapter) getPreferences(c *gin.Context) {
	userID := c.Param("userId")

	prefs, found, err := s.preferenceUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if !found {
		s.handleError(c, errors.NewNotFoundError("preferences not found"))
		return
	}

	c.JSON(http.StatusOK, toPreferencesResponse(prefs))
}

// savePreferences handles PUT /api/preferences/:userId requests
func (s *HTTPServerAdapter) savePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		s.handleError(c, err)
		return
	}

	id, err := s.preferenceUseCase.Save(c.Request.Context(), c.Param("userId"), patch)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SaveResponse{ID: id})
}

// recordSearch handles POST /api/preferences/:userId/history requests
func (s *HTTPServerAdapter) recordSearch(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	history, err := s.preferenceUseCase.RecordSearch(c.Request.Context(), c.Param("userId"), req.Entry)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"searchHistory": history})
}

// saveLocation handles POST /api/preferences/:userId/location requests
func (s *HTTPServerAdapter) saveLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	id, err := s.preferenceUseCase.SaveLocation(c.Request.Context(), c.Param("userId"), *req.Latitude, *req.Longitude)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SaveResponse{ID: id})
}

// toPatch normalizes enum spellings; the binding validators have already
// rejected unknown values
func (r PreferencesRequest) toPatch() (preferences.Patch, error) {
	patch := preferences.Patch{
		Location:      r.Location,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		APIKey:        r.APIKey,
		CustomTheme:   r.CustomTheme,
		SearchHistory: r.SearchHistory,
	}

	if r.TemperatureUnit != nil {
		unit, err := weather.ParseTemperatureUnit(*r.TemperatureUnit)
		if err != nil {
			return preferences.Patch{}, err
		}
		patch.TemperatureUnit = &unit
	}
	if r.Theme != nil {
		mode, err := theme.ParseMode(*r.Theme)
		if err != nil {
			return preferences.Patch{}, err
		}
		patch.Theme = &mode
	}
	if r.ThemePreset != nil {
		preset, err := theme.ParsePreset(*r.ThemePreset)
		if err != nil {
			return preferences.Patch{}, err
		}
		patch.ThemePreset = &preset
	}

	return patch, nil
}

func toPreferencesResponse(prefs *preferences.Preferences) PreferencesResponse {
	return PreferencesResponse{
		ID:              prefs.ID,
		UserID:          prefs.UserID,
		TemperatureUnit: string(prefs.TemperatureUnit),
		Theme:           string(prefs.Theme),
		Location:        prefs.Location,
		Latitude:        prefs.Latitude,
		Longitude:       prefs.Longitude,
		APIKey:          prefs.APIKey,
		ThemePreset:     string(prefs.ThemePreset),
		CustomTheme:     prefs.CustomTheme,
		SearchHistory:   prefs.SearchHistory,
		CreatedAt:       prefs.CreatedAt,
		UpdatedAt:       prefs.UpdatedAt,
	}
}
