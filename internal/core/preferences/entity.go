package preferences

import (
	"strings"
	"time"

	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// MaxSearchHistory bounds the number of remembered searches
const MaxSearchHistory = 10

// Preferences is the single preference record of a user
type Preferences struct {
	ID              string
	UserID          string
	TemperatureUnit weather.TemperatureUnit
	Theme           theme.Mode
	Location        string
	Latitude        *float64
	Longitude       *float64
	APIKey          string
	ThemePreset     theme.Preset
	CustomTheme     *theme.Palette
	SearchHistory   []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPreferences returns the record inserted for a user without one
func NewPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:          userID,
		TemperatureUnit: weather.UnitCelsius,
		Theme:           theme.ModeLight,
		SearchHistory:   []string{},
	}
}

// Patch lists the fields to change. Nil fields are left untouched; a nil
// SearchHistory keeps the stored history.
type Patch struct {
	TemperatureUnit *weather.TemperatureUnit
	Theme           *theme.Mode
	Location        *string
	Latitude        *float64
	Longitude       *float64
	APIKey          *string
	ThemePreset     *theme.Preset
	CustomTheme     *theme.Palette
	SearchHistory   []string
}

// Validate checks the enum and coordinate fields of the patch
func (p Patch) Validate() error {
	if p.TemperatureUnit != nil && !p.TemperatureUnit.IsValid() {
		return errors.NewValidationError("temperature unit must be one of: C, F, K")
	}
	if p.Theme != nil && !p.Theme.IsValid() {
		return errors.NewValidationError("theme must be one of: light, dark")
	}
	if p.ThemePreset != nil && *p.ThemePreset != theme.PresetNone && !p.ThemePreset.IsValid() {
		return errors.NewValidationError("theme preset must be one of: sunny, cloudy, rainy, custom")
	}
	if p.Latitude != nil && !validation.IsValidLatitude(*p.Latitude) {
		return errors.NewValidationError("latitude must be between -90 and 90")
	}
	if p.Longitude != nil && !validation.IsValidLongitude(*p.Longitude) {
		return errors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.TemperatureUnit == nil && p.Theme == nil && p.Location == nil &&
		p.Latitude == nil && p.Longitude == nil && p.APIKey == nil &&
		p.ThemePreset == nil && p.CustomTheme == nil && p.SearchHistory == nil
}

// Apply merges the patch into the record
func (prefs *Preferences) Apply(p Patch) {
	if p.TemperatureUnit != nil {
		prefs.TemperatureUnit = *p.TemperatureUnit
	}
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
	if p.Location != nil {
		prefs.Location = strings.TrimSpace(*p.Location)
	}
	if p.Latitude != nil {
		lat := *p.Latitude
		prefs.Latitude = &lat
	}
	if p.Longitude != nil {
		lon := *p.Longitude
		prefs.Longitude = &lon
	}
	if p.APIKey != nil {
		prefs.APIKey = strings.TrimSpace(*p.APIKey)
	}
	if p.ThemePreset != nil {
		prefs.ThemePreset = *p.ThemePreset
	}
	if p.CustomTheme != nil {
		if p.CustomTheme.IsZero() {
			prefs.CustomTheme = nil
		} else {
			custom := *p.CustomTheme
			prefs.CustomTheme = &custom
		}
	}
	if p.SearchHistory != nil {
		prefs.SearchHistory = NormalizeHistory(p.SearchHistory)
	}
}

// Custom returns the custom palette override, zero when unset
func (prefs *Preferences) Custom() theme.Palette {
	if prefs.CustomTheme == nil {
		return theme.Palette{}
	}
	return *prefs.CustomTheme
}

// AddToHistory puts entry at the front of history, dropping any entry equal
// to it ignoring case, and caps the result at MaxSearchHistory. Blank entries
// leave history unchanged.
func AddToHistory(history []string, entry string) []string {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return NormalizeHistory(history)
	}
	return NormalizeHistory(append([]string{entry}, history...))
}

// NormalizeHistory trims entries, drops blanks and case-insensitive
// duplicates keeping the first occurrence, and caps the length.
func NormalizeHistory(history []string) []string {
	seen := make(map[string]struct{}, len(history))
	result := make([]string, 0, len(history))
	for _, h := range history {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		key := strings.ToLower(h)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, h)
		if len(result) == MaxSearchHistory {
			break
		}
	}
	return result
}
