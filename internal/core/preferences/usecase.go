package preferences

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

type UseCase struct {
	repository ports.PreferenceRepository
	logger     ports.Logger
	metrics    ports.MetricsCollector
	clock      func() time.Time
	newID      func() string
}

type UseCaseDependencies struct {
	Repository ports.PreferenceRepository
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	Clock      func() time.Time
	// IDGenerator defaults to random UUIDs
	IDGenerator func() string
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("preference repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	uc := &UseCase{
		repository: deps.Repository,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		clock:      deps.Clock,
		newID:      deps.IDGenerator,
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	if uc.newID == nil {
		uc.newID = uuid.NewString
	}
	return uc, nil
}

// NewUserID generates an opaque identifier for a new dashboard install
func (uc *UseCase) NewUserID() string {
	return uc.newID()
}

// Get returns the record of userID. A missing record is reported as
// found == false with a nil error.
func (uc *UseCase) Get(ctx context.Context, userID string) (*Preferences, bool, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return nil, false, err
	}

	data, err := uc.repository.FindByUserID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.metrics.RecordPreferenceOperation(ctx, "get", true)
			uc.logger.Debug("No preferences stored yet", ports.F("userId", userID))
			return nil, false, nil
		}
		uc.metrics.RecordPreferenceOperation(ctx, "get", false)
		uc.logger.Error("Failed to load preferences", ports.F("userId", userID), ports.F("error", err))
		return nil, false, fmt.Errorf("get preferences for %s: %w", userID, asDatabaseError(err))
	}

	uc.metrics.RecordPreferenceOperation(ctx, "get", true)
	return fromData(data), true, nil
}

// Save merge-patches the record of userID, inserting it when absent, and
// returns the stable record id.
func (uc *UseCase) Save(ctx context.Context, userID string, patch Patch) (string, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return "", err
	}
	if err := patch.Validate(); err != nil {
		return "", err
	}

	prefs, found, err := uc.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	now := uc.clock()
	if !found {
		prefs = NewPreferences(userID)
		prefs.ID = uc.newID()
		prefs.CreatedAt = now
	}
	prefs.Apply(patch)
	prefs.UpdatedAt = now

	// a concurrent first save may have won the insert; its id is the one stored
	recordID, err := uc.repository.Upsert(ctx, toData(prefs))
	if err != nil {
		uc.metrics.RecordPreferenceOperation(ctx, "save", false)
		uc.logger.Error("Failed to save preferences", ports.F("userId", userID), ports.F("error", err))
		return "", fmt.Errorf("save preferences for %s: %w", userID, asDatabaseError(err))
	}

	uc.metrics.RecordPreferenceOperation(ctx, "save", true)
	uc.logger.Debug("Preferences saved",
		ports.F("userId", userID),
		ports.F("recordId", recordID),
		ports.F("inserted", recordID == prefs.ID && !found))
	return recordID, nil
}

// RecordSearch adds entry to the front of the user's search history and
// returns the new history.
func (uc *UseCase) RecordSearch(ctx context.Context, userID, entry string) ([]string, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil, errors.NewValidationError("search entry cannot be empty")
	}

	prefs, found, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var history []string
	if found {
		history = prefs.SearchHistory
	}
	history = AddToHistory(history, entry)

	if _, err := uc.Save(ctx, userID, Patch{SearchHistory: history}); err != nil {
		return nil, err
	}
	return history, nil
}

// SaveLocation stores geolocated coordinates together with the matching
// "lat,lon" location text.
func (uc *UseCase) SaveLocation(ctx context.Context, userID string, latitude, longitude float64) (string, error) {
	location := validation.FormatCoordinates(latitude, longitude)
	return uc.Save(ctx, userID, Patch{
		Latitude:  &latitude,
		Longitude: &longitude,
		Location:  &location,
	})
}

func normalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.NewValidationError("user id cannot be empty")
	}
	return userID, nil
}

func asDatabaseError(err error) error {
	if errors.IsDatabaseError(err) {
		return err
	}
	return errors.NewDatabaseError("preference store unavailable", err)
}

func toData(prefs *Preferences) *ports.PreferencesData {
	data := &ports.PreferencesData{
		ID:              prefs.ID,
		UserID:          prefs.UserID,
		TemperatureUnit: string(prefs.TemperatureUnit),
		Theme:           string(prefs.Theme),
		Location:        prefs.Location,
		Latitude:        prefs.Latitude,
		Longitude:       prefs.Longitude,
		APIKey:          prefs.APIKey,
		ThemePreset:     string(prefs.ThemePreset),
		SearchHistory:   append([]string{}, prefs.SearchHistory...),
		CreatedAt:       prefs.CreatedAt,
		UpdatedAt:       prefs.UpdatedAt,
	}
	if prefs.CustomTheme != nil {
		data.CustomTheme = &ports.CustomThemeData{
			Background: prefs.CustomTheme.Background,
			Foreground: prefs.CustomTheme.Foreground,
			Primary:    prefs.CustomTheme.Primary,
		}
	}
	return data
}

// fromData tolerates unknown stored enum values by falling back to defaults
func fromData(data *ports.PreferencesData) *Preferences {
	prefs := NewPreferences(data.UserID)
	prefs.ID = data.ID
	if unit := weather.TemperatureUnit(data.TemperatureUnit); unit.IsValid() {
		prefs.TemperatureUnit = unit
	}
	if mode := theme.Mode(data.Theme); mode.IsValid() {
		prefs.Theme = mode
	}
	if preset := theme.Preset(data.ThemePreset); preset.IsValid() {
		prefs.ThemePreset = preset
	}
	prefs.Location = data.Location
	prefs.Latitude = data.Latitude
	prefs.Longitude = data.Longitude
	prefs.APIKey = data.APIKey
	if data.CustomTheme != nil {
		prefs.CustomTheme = &theme.Palette{
			Background: data.CustomTheme.Background,
			Foreground: data.CustomTheme.Foreground,
			Primary:    data.CustomTheme.Primary,
		}
	}
	prefs.SearchHistory = NormalizeHistory(data.SearchHistory)
	prefs.CreatedAt = data.CreatedAt
	prefs.UpdatedAt = data.UpdatedAt
	return prefs
}
