package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	return db
}

func newRecord(userID string) *ports.PreferencesData {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &ports.PreferencesData{
		ID:              "rec-" + userID,
		UserID:          userID,
		TemperatureUnit: "C",
		Theme:           "light",
		SearchHistory:   []string{},
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func TestPreferenceRepository_Upsert_Insert(t *testing.T) {
	repo := NewPreferenceRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	lat, lon := 51.5, -0.12
	record := newRecord("user-1")
	record.Location = "51.5,-0.12"
	record.Latitude = &lat
	record.Longitude = &lon
	record.ThemePreset = "custom"
	record.CustomTheme = &ports.CustomThemeData{Primary: "#ff00ff"}
	record.SearchHistory = []string{"London", "Paris"}

	id, err := repo.Upsert(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "rec-user-1", id)

	found, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-user-1", found.ID)
	assert.Equal(t, "51.5,-0.12", found.Location)
	require.NotNil(t, found.Latitude)
	assert.Equal(t, 51.5, *found.Latitude)
	assert.Equal(t, -0.12, *found.Longitude)
	assert.Equal(t, "custom", found.ThemePreset)
	require.NotNil(t, found.CustomTheme)
	assert.Equal(t, "#ff00ff", found.CustomTheme.Primary)
	assert.Empty(t, found.CustomTheme.Background)
	assert.Equal(t, []string{"London", "Paris"}, found.SearchHistory)
}

func TestPreferenceRepository_Upsert_UpdatesExistingUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPreferenceRepositoryAdapter(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, newRecord("user-1"))
	require.NoError(t, err)

	update := newRecord("user-1")
	update.ID = "another-id"
	update.TemperatureUnit = "F"
	update.Theme = "dark"
	update.APIKey = "user-key"
	update.CreatedAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	update.UpdatedAt = time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	id, err := repo.Upsert(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, "rec-user-1", id, "the stored id is returned, not the proposed one")

	found, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-user-1", found.ID)
	assert.Equal(t, "F", found.TemperatureUnit)
	assert.Equal(t, "dark", found.Theme)
	assert.Equal(t, "user-key", found.APIKey)
	assert.Equal(t, 2024, found.CreatedAt.Year())
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))

	var count int64
	require.NoError(t, db.Model(&PreferencesModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPreferenceRepository_Upsert_ClearsOptionalFields(t *testing.T) {
	repo := NewPreferenceRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	lat := 10.0
	record := newRecord("user-1")
	record.Latitude = &lat
	record.Longitude = &lat
	record.CustomTheme = &ports.CustomThemeData{Background: "#000000"}
	_, err := repo.Upsert(ctx, record)
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, newRecord("user-1"))
	require.NoError(t, err)

	found, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, found.Latitude)
	assert.Nil(t, found.Longitude)
	assert.Nil(t, found.CustomTheme)
	assert.Empty(t, found.SearchHistory)
}

func TestPreferenceRepository_FindByUserID_NotFound(t *testing.T) {
	repo := NewPreferenceRepositoryAdapter(setupTestDB(t))

	found, err := repo.FindByUserID(context.Background(), "nobody")

	assert.Nil(t, found)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPreferenceRepository_Validation(t *testing.T) {
	repo := NewPreferenceRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByUserID(ctx, "  ")
	assert.True(t, errors.IsValidationError(err))

	_, err = repo.Upsert(ctx, nil)
	assert.True(t, errors.IsValidationError(err))

	missingID := newRecord("user-1")
	missingID.ID = ""
	_, err = repo.Upsert(ctx, missingID)
	assert.True(t, errors.IsValidationError(err))

	_, err = repo.Upsert(ctx, newRecord(""))
	assert.True(t, errors.IsValidationError(err))
}

func TestPreferenceRepository_DatabaseError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPreferenceRepositoryAdapter(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.FindByUserID(context.Background(), "user-1")
	assert.True(t, errors.IsDatabaseError(err))
}
