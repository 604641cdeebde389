package database

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// CustomThemeModel is stored as a JSON column
type CustomThemeModel struct {
	Background string `json:"background,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	Primary    string `json:"primary,omitempty"`
}

// PreferencesModel represents the database model for user preferences
type PreferencesModel struct {
	ID              string            `gorm:"primaryKey;size:36"`
	UserID          string            `gorm:"uniqueIndex;not null"`
	TemperatureUnit string            `gorm:"size:1;not null;default:C"`
	Theme           string            `gorm:"size:5;not null;default:light"`
	Location        string            `gorm:"default:''"`
	Latitude        *float64          `gorm:"column:lat"`
	Longitude       *float64          `gorm:"column:lon"`
	APIKey          string            `gorm:"column:api_key;default:''"`
	ThemePreset     string            `gorm:"size:16;default:''"`
	CustomTheme     *CustomThemeModel `gorm:"serializer:json"`
	SearchHistory   []string          `gorm:"serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PreferencesModel) TableName() string {
	return "user_preferences"
}

// upsertColumns are overwritten when a record for the user already exists;
// id and created_at keep their first values.
var upsertColumns = []string{
	"temperature_unit", "theme", "location", "lat", "lon", "api_key",
	"theme_preset", "custom_theme", "search_history", "updated_at",
}

// PreferenceRepositoryAdapter implements the PreferenceRepository port using GORM
type PreferenceRepositoryAdapter struct {
	db *gorm.DB
}

// NewPreferenceRepositoryAdapter creates a new preference repository adapter
func NewPreferenceRepositoryAdapter(db *gorm.DB) ports.PreferenceRepository {
	return &PreferenceRepositoryAdapter{db: db}
}

// FindByUserID retrieves the preference record of a user
func (r *PreferenceRepositoryAdapter) FindByUserID(ctx context.Context, userID string) (*ports.PreferencesData, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewValidationError("user id cannot be empty")
	}

	var model PreferencesModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("preferences not found")
		}
		return nil, errors.NewDatabaseError("failed to find preferences", result.Error)
	}

	return r.modelToData(&model), nil
}

// Upsert inserts the record or updates the existing record of the same user
// and returns the id of the stored row.
func (r *PreferenceRepositoryAdapter) Upsert(ctx context.Context, prefs *ports.PreferencesData) (string, error) {
	if prefs == nil {
		return "", errors.NewValidationError("preferences cannot be nil")
	}
	if prefs.ID == "" {
		return "", errors.NewValidationError("preferences id cannot be empty")
	}
	if strings.TrimSpace(prefs.UserID) == "" {
		return "", errors.NewValidationError("user id cannot be empty")
	}

	model := r.dataToModel(prefs)
	db := r.db.WithContext(ctx)
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(model)
	if result.Error != nil {
		return "", errors.NewDatabaseError("failed to save preferences", result.Error)
	}

	// the insert may have lost to an existing row whose id is kept
	var stored PreferencesModel
	if err := db.Select("id").Where("user_id = ?", model.UserID).First(&stored).Error; err != nil {
		return "", errors.NewDatabaseError("failed to read saved preferences", err)
	}

	return stored.ID, nil
}

// dataToModel converts port data to database model
func (r *PreferenceRepositoryAdapter) dataToModel(data *ports.PreferencesData) *PreferencesModel {
	model := &PreferencesModel{
		ID:              data.ID,
		UserID:          data.UserID,
		TemperatureUnit: data.TemperatureUnit,
		Theme:           data.Theme,
		Location:        data.Location,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		APIKey:          data.APIKey,
		ThemePreset:     data.ThemePreset,
		SearchHistory:   data.SearchHistory,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if model.SearchHistory == nil {
		model.SearchHistory = []string{}
	}
	if data.CustomTheme != nil {
		model.CustomTheme = &CustomThemeModel{
			Background: data.CustomTheme.Background,
			Foreground: data.CustomTheme.Foreground,
			Primary:    data.CustomTheme.Primary,
		}
	}
	return model
}

// modelToData converts database model to port data
func (r *PreferenceRepositoryAdapter) modelToData(model *PreferencesModel) *ports.PreferencesData {
	data := &ports.PreferencesData{
		ID:              model.ID,
		UserID:          model.UserID,
		TemperatureUnit: model.TemperatureUnit,
		Theme:           model.Theme,
		Location:        model.Location,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		APIKey:          model.APIKey,
		ThemePreset:     model.ThemePreset,
		SearchHistory:   model.SearchHistory,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.CustomTheme != nil {
		data.CustomTheme = &ports.CustomThemeData{
			Background: model.CustomTheme.Background,
			Foreground: model.CustomTheme.Foreground,
			Primary:    model.CustomTheme.Primary,
		}
	}
	return data
}
