package ports

import (
	"context"
	"time"
)

// CustomThemeData holds user-chosen palette colours. Empty means unset.
type CustomThemeData struct {
	Background string `json:"background,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	Primary    string `json:"primary,omitempty"`
}

// PreferencesData represents a preference record for persistence
type PreferencesData struct {
	ID              string
	UserID          string
	TemperatureUnit string
	Theme           string
	Location        string
	Latitude        *float64
	Longitude       *float64
	APIKey          string
	ThemePreset     string
	CustomTheme     *CustomThemeData
	SearchHistory   []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PreferenceRepository defines the contract for preference persistence.
// FindByUserID returns a NOT_FOUND error when no record exists.
// Upsert keeps the id and creation time of an existing record for the same
// user and returns the id that is stored.
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID string) (*PreferencesData, error)
	Upsert(ctx context.Context, prefs *PreferencesData) (string, error)
}
