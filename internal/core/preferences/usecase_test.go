package preferences

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

var fixedNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

// memoryRepository is an upsert-by-user store used to check round trips
type memoryRepository struct {
	mu      sync.Mutex
	records map[string]ports.PreferencesData
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{records: make(map[string]ports.PreferencesData)}
}

func (r *memoryRepository) FindByUserID(_ context.Context, userID string) (*ports.PreferencesData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[userID]
	if !ok {
		return nil, errors.NewNotFoundError("preferences not found")
	}
	return &record, nil
}

func (r *memoryRepository) Upsert(_ context.Context, prefs *ports.PreferencesData) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record := *prefs
	if existing, ok := r.records[prefs.UserID]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	r.records[prefs.UserID] = record
	return record.ID, nil
}

func newMetrics(t *testing.T) *mocks.MetricsCollector {
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordPreferenceOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	return metrics
}

func newTestUseCase(t *testing.T, repo ports.PreferenceRepository) *UseCase {
	var ids int64
	uc, err := NewUseCase(UseCaseDependencies{
		Repository: repo,
		Logger:     mocks.NewNopLogger(t),
		Metrics:    newMetrics(t),
		Clock:      func() time.Time { return fixedNow },
		IDGenerator: func() string {
			return fmt.Sprintf("record-%d", atomic.AddInt64(&ids, 1))
		},
	})
	require.NoError(t, err)
	return uc
}

func TestUseCase_Get_Absent(t *testing.T) {
	uc := newTestUseCase(t, newMemoryRepository())

	prefs, found, err := uc.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, prefs)
}

func TestUseCase_Save_InsertsWithDefaults(t *testing.T) {
	repo := newMemoryRepository()
	uc := newTestUseCase(t, repo)
	location := "Paris"

	id, err := uc.Save(context.Background(), "user-1", Patch{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "record-1", id)

	prefs, found, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "record-1", prefs.ID)
	assert.Equal(t, weather.UnitCelsius, prefs.TemperatureUnit)
	assert.Equal(t, theme.ModeLight, prefs.Theme)
	assert.Equal(t, "Paris", prefs.Location)
	assert.Equal(t, []string{}, prefs.SearchHistory)
	assert.Equal(t, fixedNow, prefs.CreatedAt)
}

func TestUseCase_Save_MergePatchKeepsRecordID(t *testing.T) {
	repo := newMemoryRepository()
	uc := newTestUseCase(t, repo)
	dark := theme.ModeDark
	unit := weather.UnitFahrenheit
	apiKey := "secret"

	firstID, err := uc.Save(context.Background(), "user-1", Patch{Theme: &dark, APIKey: &apiKey})
	require.NoError(t, err)

	secondID, err := uc.Save(context.Background(), "user-1", Patch{TemperatureUnit: &unit})
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	prefs, _, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, theme.ModeDark, prefs.Theme)
	assert.Equal(t, weather.UnitFahrenheit, prefs.TemperatureUnit)
	assert.Equal(t, "secret", prefs.APIKey)
	assert.Len(t, repo.records, 1)
}

func TestUseCase_Save_ReturnsStoredID(t *testing.T) {
	t.Run("InsertLostToExistingRow", func(t *testing.T) {
		repo := mocks.NewPreferenceRepository(t)
		repo.EXPECT().FindByUserID(mock.Anything, "user-1").Return(nil, errors.NewNotFoundError("preferences not found"))
		repo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(data *ports.PreferencesData) bool {
			return data.ID == "record-1"
		})).Return("stored-id", nil)

		id, err := newTestUseCase(t, repo).Save(context.Background(), "user-1", Patch{})

		require.NoError(t, err)
		assert.Equal(t, "stored-id", id)
	})

	t.Run("ConcurrentFirstSaves", func(t *testing.T) {
		repo := newMemoryRepository()
		uc := newTestUseCase(t, repo)
		unit := weather.UnitKelvin

		ids := make([]string, 2)
		var wg sync.WaitGroup
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id, err := uc.Save(context.Background(), "user-1", Patch{TemperatureUnit: &unit})
				assert.NoError(t, err)
				ids[i] = id
			}(i)
		}
		wg.Wait()

		stored := repo.records["user-1"].ID
		assert.Equal(t, []string{stored, stored}, ids)
	})
}

func TestUseCase_Save_IdenticalTwiceIsIdempotent(t *testing.T) {
	repo := newMemoryRepository()
	uc := newTestUseCase(t, repo)
	unit := weather.UnitKelvin
	preset := theme.PresetCustom
	patch := Patch{
		TemperatureUnit: &unit,
		ThemePreset:     &preset,
		CustomTheme:     &theme.Palette{Background: "#000000"},
		SearchHistory:   []string{"Paris", "Tokyo"},
	}

	firstID, err := uc.Save(context.Background(), "user-1", patch)
	require.NoError(t, err)
	first, _, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	secondID, err := uc.Save(context.Background(), "user-1", patch)
	require.NoError(t, err)
	second, _, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, firstID, secondID)
	assert.Equal(t, first, second)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, []string{"Paris", "Tokyo"}, second.SearchHistory)
	assert.Equal(t, "#000000", second.Custom().Background)
}

func TestUseCase_Save_Validation(t *testing.T) {
	uc := newTestUseCase(t, mocks.NewPreferenceRepository(t))
	bad := weather.TemperatureUnit("X")

	_, err := uc.Save(context.Background(), "user-1", Patch{TemperatureUnit: &bad})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Save(context.Background(), "  ", Patch{})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_StoreFailuresAreDatabaseErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mocks.PreferenceRepository)
		call  func(uc *UseCase) error
	}{
		{
			name: "GetFails",
			setup: func(repo *mocks.PreferenceRepository) {
				repo.EXPECT().FindByUserID(mock.Anything, "user-1").Return(nil, fmt.Errorf("connection refused"))
			},
			call: func(uc *UseCase) error {
				_, _, err := uc.Get(context.Background(), "user-1")
				return err
			},
		},
		{
			name: "UpsertFails",
			setup: func(repo *mocks.PreferenceRepository) {
				repo.EXPECT().FindByUserID(mock.Anything, "user-1").Return(nil, errors.NewNotFoundError("preferences not found"))
				repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return("", errors.NewDatabaseError("upsert failed", nil))
			},
			call: func(uc *UseCase) error {
				_, err := uc.Save(context.Background(), "user-1", Patch{})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewPreferenceRepository(t)
			tt.setup(repo)
			uc := newTestUseCase(t, repo)

			err := tt.call(uc)
			require.Error(t, err)
			assert.True(t, errors.IsDatabaseError(err))
		})
	}
}

func TestUseCase_RecordSearch(t *testing.T) {
	repo := newMemoryRepository()
	uc := newTestUseCase(t, repo)
	ctx := context.Background()

	_, err := uc.RecordSearch(ctx, "user-1", "London")
	require.NoError(t, err)
	_, err = uc.RecordSearch(ctx, "user-1", "Tokyo")
	require.NoError(t, err)

	history, err := uc.RecordSearch(ctx, "user-1", "london")
	require.NoError(t, err)
	assert.Equal(t, []string{"london", "Tokyo"}, history)

	prefs, _, err := uc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"london", "Tokyo"}, prefs.SearchHistory)

	_, err = uc.RecordSearch(ctx, "user-1", " ")
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_SaveLocation(t *testing.T) {
	repo := newMemoryRepository()
	uc := newTestUseCase(t, repo)

	_, err := uc.SaveLocation(context.Background(), "user-1", 51.5, -0.12)
	require.NoError(t, err)

	prefs, _, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "51.5,-0.12", prefs.Location)
	require.NotNil(t, prefs.Latitude)
	require.NotNil(t, prefs.Longitude)
	assert.Equal(t, 51.5, *prefs.Latitude)
	assert.Equal(t, -0.12, *prefs.Longitude)
}

func TestUseCase_Get_ToleratesUnknownStoredValues(t *testing.T) {
	repo := mocks.NewPreferenceRepository(t)
	repo.EXPECT().FindByUserID(mock.Anything, "user-1").Return(&ports.PreferencesData{
		ID:              "record-9",
		UserID:          "user-1",
		TemperatureUnit: "",
		Theme:           "blue",
		ThemePreset:     "stormy",
		SearchHistory:   []string{"Paris", "paris"},
	}, nil)
	uc := newTestUseCase(t, repo)

	prefs, found, err := uc.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, weather.UnitCelsius, prefs.TemperatureUnit)
	assert.Equal(t, theme.ModeLight, prefs.Theme)
	assert.Equal(t, theme.PresetNone, prefs.ThemePreset)
	assert.Equal(t, []string{"Paris"}, prefs.SearchHistory)
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Logger: mocks.NewLogger(t), Metrics: mocks.NewMetricsCollector(t)})
	assert.ErrorContains(t, err, "preference repository is required")

	_, err = NewUseCase(UseCaseDependencies{Repository: newMemoryRepository(), Metrics: mocks.NewMetricsCollector(t)})
	assert.ErrorContains(t, err, "logger is required")

	_, err = NewUseCase(UseCaseDependencies{Repository: newMemoryRepository(), Logger: mocks.NewLogger(t)})
	assert.ErrorContains(t, err, "metrics is required")
}
