// Package supabase stores user preferences in a Supabase (PostgREST) table.
package supabase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/supabase-community/supabase-go"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// preferenceRow is the JSON shape of a user_preferences row
type preferenceRow struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	TemperatureUnit string                 `json:"temperature_unit"`
	Theme           string                 `json:"theme"`
	Location        string                 `json:"location"`
	Latitude        *float64               `json:"lat"`
	Longitude       *float64               `json:"lon"`
	APIKey          string                 `json:"api_key"`
	ThemePreset     string                 `json:"theme_preset"`
	CustomTheme     *ports.CustomThemeData `json:"custom_theme"`
	SearchHistory   []string               `json:"search_history"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// preferenceChanges holds the columns an update may overwrite
type preferenceChanges struct {
	TemperatureUnit string                 `json:"temperature_unit"`
	Theme           string                 `json:"theme"`
	Location        string                 `json:"location"`
	Latitude        *float64               `json:"lat"`
	Longitude       *float64               `json:"lon"`
	APIKey          string                 `json:"api_key"`
	ThemePreset     string                 `json:"theme_preset"`
	CustomTheme     *ports.CustomThemeData `json:"custom_theme"`
	SearchHistory   []string               `json:"search_history"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// PreferenceRepository implements the PreferenceRepository port on Supabase
type PreferenceRepository struct {
	client *supabase.Client
	table  string
	logger ports.Logger
}

type PreferenceRepositoryDependencies struct {
	URL    string
	Key    string
	Table  string
	Logger ports.Logger
}

// NewPreferenceRepository creates a Supabase client for the project at URL
func NewPreferenceRepository(deps PreferenceRepositoryDependencies) (*PreferenceRepository, error) {
	if deps.URL == "" || deps.Key == "" {
		return nil, errors.NewConfigurationError("supabase URL and key must be provided", nil)
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	table := deps.Table
	if table == "" {
		table = "user_preferences"
	}

	client, err := supabase.NewClient(strings.TrimRight(deps.URL, "/"), deps.Key, &supabase.ClientOptions{})
	if err != nil {
		return nil, errors.NewConfigurationError("failed to create Supabase client", err)
	}

	deps.Logger.Info("Supabase preference store initialized", ports.F("url", deps.URL), ports.F("table", table))
	return &PreferenceRepository{client: client, table: table, logger: deps.Logger}, nil
}

// FindByUserID retrieves the row of userID
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID string) (*ports.PreferencesData, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewValidationError("user id cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewDatabaseError("request cancelled", err)
	}

	data, _, err := r.client.From(r.table).
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to get preferences", err)
	}

	var rows []preferenceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.NewDatabaseError("failed to unmarshal response", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("preferences not found")
	}

	return rowToData(&rows[0]), nil
}

// Upsert updates the row of the same user in place, leaving its id and
// created_at untouched, and inserts a new row when none exists. It returns
// the id that is stored.
func (r *PreferenceRepository) Upsert(ctx context.Context, prefs *ports.PreferencesData) (string, error) {
	if prefs == nil {
		return "", errors.NewValidationError("preferences cannot be nil")
	}
	if prefs.ID == "" {
		return "", errors.NewValidationError("preferences id cannot be empty")
	}
	if strings.TrimSpace(prefs.UserID) == "" {
		return "", errors.NewValidationError("user id cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return "", errors.NewDatabaseError("request cancelled", err)
	}

	id, updated, err := r.update(prefs)
	if err != nil {
		return "", err
	}
	if updated {
		r.logger.Debug("Preferences updated", ports.F("userId", prefs.UserID), ports.F("recordId", id))
		return id, nil
	}

	_, _, insertErr := r.client.From(r.table).
		Insert(dataToRow(prefs), false, "", "minimal", "").
		Execute()
	if insertErr == nil {
		r.logger.Debug("Preferences inserted", ports.F("userId", prefs.UserID), ports.F("recordId", prefs.ID))
		return prefs.ID, nil
	}

	// a concurrent first save inserted the row in between
	id, updated, err = r.update(prefs)
	if err != nil {
		return "", err
	}
	if !updated {
		return "", errors.NewDatabaseError("failed to insert preferences", insertErr)
	}
	return id, nil
}

// update patches the mutable columns of the user's row and reports whether a
// row matched.
func (r *PreferenceRepository) update(prefs *ports.PreferencesData) (string, bool, error) {
	data, _, err := r.client.From(r.table).
		Update(dataToChanges(prefs), "representation", "").
		Eq("user_id", prefs.UserID).
		Execute()
	if err != nil {
		return "", false, errors.NewDatabaseError("failed to update preferences", err)
	}

	var rows []preferenceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", false, errors.NewDatabaseError("failed to unmarshal response", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].ID, true, nil
}

func dataToRow(data *ports.PreferencesData) *preferenceRow {
	row := &preferenceRow{
		ID:              data.ID,
		UserID:          data.UserID,
		TemperatureUnit: data.TemperatureUnit,
		Theme:           data.Theme,
		Location:        data.Location,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		APIKey:          data.APIKey,
		ThemePreset:     data.ThemePreset,
		CustomTheme:     data.CustomTheme,
		SearchHistory:   data.SearchHistory,
		CreatedAt:       data.CreatedAt.UTC(),
		UpdatedAt:       data.UpdatedAt.UTC(),
	}
	if row.SearchHistory == nil {
		row.SearchHistory = []string{}
	}
	return row
}

func dataToChanges(data *ports.PreferencesData) *preferenceChanges {
	row := dataToRow(data)
	return &preferenceChanges{
		TemperatureUnit: row.TemperatureUnit,
		Theme:           row.Theme,
		Location:        row.Location,
		Latitude:        row.Latitude,
		Longitude:       row.Longitude,
		APIKey:          row.APIKey,
		ThemePreset:     row.ThemePreset,
		CustomTheme:     row.CustomTheme,
		SearchHistory:   row.SearchHistory,
		UpdatedAt:       row.UpdatedAt,
	}
}

func rowToData(row *preferenceRow) *ports.PreferencesData {
	return &ports.PreferencesData{
		ID:              row.ID,
		UserID:          row.UserID,
		TemperatureUnit: row.TemperatureUnit,
		Theme:           row.Theme,
		Location:        row.Location,
		Latitude:        row.Latitude,
		Longitude:       row.Longitude,
		APIKey:          row.APIKey,
		ThemePreset:     row.ThemePreset,
		CustomTheme:     row.CustomTheme,
		SearchHistory:   row.SearchHistory,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
