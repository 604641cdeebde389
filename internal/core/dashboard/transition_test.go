package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func effectsOf[T Effect](effects []Effect) []T {
	var matched []T
	for _, e := range effects {
		if typed, ok := e.(T); ok {
			matched = append(matched, typed)
		}
	}
	return matched
}

func startedState(t *testing.T, envKey string) State {
	t.Helper()
	s, _ := Transition(NewState(envKey), Started{UserID: "user-1", SavedLocation: "Paris"})
	s, _ = Transition(s, WeatherFetched{Query: "Paris", View: &weather.CompositeView{Location: weather.Location{Name: "Paris"}}})
	return s
}

func TestTransition_Started(t *testing.T) {
	tests := []struct {
		name          string
		event         Started
		envKey        string
		expectFetch   *FetchWeather
		expectLocate  bool
		expectMessage string
	}{
		{
			name:        "SavedLocationFetches",
			event:       Started{UserID: "user-1", SavedLocation: "Paris"},
			envKey:      "env-key",
			expectFetch: &FetchWeather{Query: "Paris", APIKey: "env-key"},
		},
		{
			name:        "ScratchKeyBeatsEnvironment",
			event:       Started{UserID: "user-1", SavedLocation: "Paris", ScratchAPIKey: "local-key"},
			envKey:      "env-key",
			expectFetch: &FetchWeather{Query: "Paris", APIKey: "local-key"},
		},
		{
			name:         "NoSavedLocationRequestsLocation",
			event:        Started{UserID: "user-1"},
			envKey:       "env-key",
			expectLocate: true,
		},
		{
			name:          "NoKeyReportsConfigurationError",
			event:         Started{UserID: "user-1", SavedLocation: "Paris"},
			expectMessage: MsgAPIKeyMissing,
		},
		{
			name:  "NoKeyNoLocationWaitsForPreferences",
			event: Started{UserID: "user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, effects := Transition(NewState(tt.envKey), tt.event)

			assert.Equal(t, "user-1", s.UserID)
			assert.Contains(t, effects, PersistScratch{Key: ports.ScratchKeyUserID, Value: "user-1"})
			assert.Contains(t, effects, LoadPreferences{UserID: "user-1"})

			fetches := effectsOf[FetchWeather](effects)
			if tt.expectFetch != nil {
				require.Len(t, fetches, 1)
				assert.Equal(t, *tt.expectFetch, fetches[0])
				assert.True(t, s.Loading)
				assert.Equal(t, "Paris", s.Query)
			} else {
				assert.Empty(t, fetches)
				assert.False(t, s.Loading)
			}

			assert.Equal(t, tt.expectLocate, len(effectsOf[RequestLocation](effects)) == 1)
			if tt.expectMessage != "" {
				require.NotNil(t, s.Notification)
				assert.Equal(t, LevelError, s.Notification.Level)
				assert.Equal(t, tt.expectMessage, s.Notification.Message)
			}
		})
	}
}

func TestTransition_SearchSubmitted(t *testing.T) {
	s := startedState(t, "env-key")
	s.History = []string{"Tokyo", "London"}

	next, effects := Transition(s, SearchSubmitted{Query: " london "})

	assert.Equal(t, "london", next.Query)
	assert.Equal(t, []string{"london", "Tokyo"}, next.History)
	assert.True(t, next.Loading)
	assert.Equal(t, []string{"Tokyo", "London"}, s.History, "input state must not change")

	assert.Contains(t, effects, PersistScratch{Key: ports.ScratchKeyLocation, Value: "london"})
	assert.Contains(t, effects, FetchWeather{Query: "london", APIKey: "env-key"})

	saves := effectsOf[SavePreferences](effects)
	require.Len(t, saves, 1)
	assert.Equal(t, "user-1", saves[0].UserID)
	require.NotNil(t, saves[0].Patch.Location)
	assert.Equal(t, "london", *saves[0].Patch.Location)
	assert.Equal(t, []string{"london", "Tokyo"}, saves[0].Patch.SearchHistory)
}

func TestTransition_SearchSubmitted_Blank(t *testing.T) {
	s := startedState(t, "env-key")

	next, effects := Transition(s, SearchSubmitted{Query: "   "})

	assert.Empty(t, effects)
	assert.Equal(t, s.Query, next.Query)
}

func TestTransition_SuggestionSelected(t *testing.T) {
	s := startedState(t, "env-key")

	next, effects := Transition(s, SuggestionSelected{Suggestion: suggestion.Suggestion{
		Text: suggestion.CurrentLocation, Kind: suggestion.KindCurrentLocation,
	}})
	assert.Equal(t, []Effect{RequestLocation{APIKey: "env-key"}}, effects)
	assert.Equal(t, "Paris", next.Query)

	next, effects = Transition(s, SuggestionSelected{Suggestion: suggestion.Suggestion{Text: "Tokyo", Kind: suggestion.KindPopular}})
	assert.Equal(t, "Tokyo", next.Query)
	assert.Contains(t, effects, FetchWeather{Query: "Tokyo", APIKey: "env-key"})
	assert.Equal(t, []string{"Tokyo"}, next.History)
}

func TestTransition_FetchFailureKeepsPreviousView(t *testing.T) {
	s := startedState(t, "env-key")
	previous := s.View

	s, _ = Transition(s, SearchSubmitted{Query: "Atlantis"})
	require.True(t, s.Loading)

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "NetworkError", err: errors.NewExternalAPIError("boom", nil), expected: MsgFetchFailed},
		{name: "UnknownLocation", err: errors.NewNotFoundError("no matching location found"), expected: MsgLocationNotFound},
		{name: "RejectedKey", err: errors.NewConfigurationError("invalid key", nil), expected: MsgAPIKeyRejected},
		{name: "PlainError", err: fmt.Errorf("decode failed"), expected: MsgFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects := Transition(s, WeatherFetchFailed{Query: "Atlantis", Err: tt.err})

			assert.Same(t, previous, next.View)
			assert.False(t, next.Loading)
			require.NotNil(t, next.Notification)
			assert.Equal(t, tt.expected, next.Notification.Message)
			assert.Equal(t, []Effect{Notify{Notification: *next.Notification}}, effects)
		})
	}
}

func TestTransition_StaleFetchResultIgnored(t *testing.T) {
	s := startedState(t, "env-key")
	s, _ = Transition(s, SearchSubmitted{Query: "Tokyo"})
	s, _ = Transition(s, SearchSubmitted{Query: "Oslo"})

	next, effects := Transition(s, WeatherFetched{Query: "Tokyo", View: &weather.CompositeView{}})

	assert.Empty(t, effects)
	assert.True(t, next.Loading)
	assert.Equal(t, "Paris", next.View.Location.Name)
}

func TestTransition_APIKeyResolutionOrder(t *testing.T) {
	s := startedState(t, "env-key")
	s.Keys.Scratch = "scratch-key"

	s, _ = Transition(s, PreferencesLoaded{Found: true, Preferences: &preferences.Preferences{
		UserID:          "user-1",
		TemperatureUnit: weather.UnitCelsius,
		Theme:           theme.ModeLight,
		APIKey:          "stored-key",
		Location:        "Paris",
	}})
	_, effects := Transition(s, SearchSubmitted{Query: "Rome"})
	assert.Contains(t, effects, FetchWeather{Query: "Rome", APIKey: "stored-key"})

	s, effects = Transition(s, APIKeySaved{APIKey: " session-key "})
	assert.Contains(t, effects, PersistScratch{Key: ports.ScratchKeyAPIKey, Value: "session-key"})
	assert.Contains(t, effects, FetchWeather{Query: "Paris", APIKey: "session-key"})
	saves := effectsOf[SavePreferences](effects)
	require.Len(t, saves, 1)
	assert.Equal(t, "session-key", *saves[0].Patch.APIKey)

	key, source := s.APIKey()
	assert.Equal(t, "session-key", key)
	assert.Equal(t, preferences.KeySourceSession, source)
}

func TestTransition_APIKeyCleared(t *testing.T) {
	s := startedState(t, "")
	s, _ = Transition(s, APIKeySaved{APIKey: "k"})

	next, effects := Transition(s, APIKeySaved{APIKey: ""})

	assert.Empty(t, effectsOf[FetchWeather](effects))
	assert.Equal(t, MsgAPIKeyCleared, next.Notification.Message)
	_, source := next.APIKey()
	assert.Equal(t, preferences.KeySourceNone, source)

	_, effects = Transition(next, SearchSubmitted{Query: "Rome"})
	assert.Empty(t, effectsOf[FetchWeather](effects))
}

func TestTransition_PreferencesLoaded(t *testing.T) {
	s := startedState(t, "env-key")

	next, effects := Transition(s, PreferencesLoaded{Found: true, Preferences: &preferences.Preferences{
		UserID:          "user-1",
		TemperatureUnit: weather.UnitFahrenheit,
		Theme:           theme.ModeDark,
		Location:        "Berlin",
		ThemePreset:     theme.PresetNone,
		SearchHistory:   []string{"Berlin", "Paris"},
	}})

	assert.True(t, next.PreferencesLoaded)
	assert.Equal(t, weather.UnitFahrenheit, next.Unit)
	assert.Equal(t, theme.ModeDark, next.Theme)
	assert.Equal(t, theme.BasePalette(theme.ModeDark), next.Palette)
	assert.Equal(t, []string{"Berlin", "Paris"}, next.History)
	assert.Equal(t, "Berlin", next.Query)
	assert.Equal(t, []Effect{FetchWeather{Query: "Berlin", APIKey: "env-key"}}, effects)
}

func TestTransition_PreferencesAbsentKeepsDefaults(t *testing.T) {
	s := startedState(t, "env-key")

	next, effects := Transition(s, PreferencesLoaded{Found: false})

	assert.Empty(t, effects)
	assert.True(t, next.PreferencesLoaded)
	assert.Equal(t, weather.UnitCelsius, next.Unit)
	assert.Empty(t, next.History)
}

func TestTransition_PreferenceKeyResumesStartup(t *testing.T) {
	t.Run("SameSavedLocation", func(t *testing.T) {
		s, _ := Transition(NewState(""), Started{UserID: "user-1", SavedLocation: "London"})
		require.NotNil(t, s.Notification)
		require.Equal(t, MsgAPIKeyMissing, s.Notification.Message)

		next, effects := Transition(s, PreferencesLoaded{Found: true, Preferences: &preferences.Preferences{
			UserID:   "user-1",
			Location: "London",
			APIKey:   "persisted-key",
		}})

		assert.Equal(t, []Effect{FetchWeather{Query: "London", APIKey: "persisted-key"}}, effects)
		assert.True(t, next.Loading)
		assert.Equal(t, "London", next.PendingQuery)
	})

	t.Run("DeferredLocation", func(t *testing.T) {
		s, effects := Transition(NewState(""), Started{UserID: "user-1"})
		require.Empty(t, effectsOf[RequestLocation](effects))
		require.True(t, s.LocateDeferred)

		next, effects := Transition(s, PreferencesLoaded{Found: true, Preferences: &preferences.Preferences{
			UserID: "user-1",
			APIKey: "persisted-key",
		}})

		assert.Equal(t, []Effect{RequestLocation{APIKey: "persisted-key"}}, effects)
		assert.False(t, next.LocateDeferred)
	})

	t.Run("DeferredLocationAfterLoadFailure", func(t *testing.T) {
		s, _ := Transition(NewState(""), Started{UserID: "user-1"})

		next, effects := Transition(s, PreferencesLoadFailed{Err: errors.NewDatabaseError("down", nil)})

		assert.Equal(t, []RequestLocation{{APIKey: ""}}, effectsOf[RequestLocation](effects))
		assert.False(t, next.LocateDeferred)
		require.NotNil(t, next.Notification)
		assert.Equal(t, MsgPreferencesMissing, next.Notification.Message)
	})

	t.Run("FetchInFlightIsNotRepeated", func(t *testing.T) {
		s, _ := Transition(NewState("env-key"), Started{UserID: "user-1", SavedLocation: "London"})

		_, effects := Transition(s, PreferencesLoaded{Found: true, Preferences: &preferences.Preferences{
			UserID:   "user-1",
			Location: "London",
			APIKey:   "persisted-key",
		}})

		assert.Empty(t, effects)
	})
}

func TestTransition_ThemeAndPreset(t *testing.T) {
	s := startedState(t, "env-key")

	s, effects := Transition(s, ThemeChanged{Theme: theme.ModeDark})
	assert.Equal(t, theme.BasePalette(theme.ModeDark), s.Palette)
	saves := effectsOf[SavePreferences](effects)
	require.Len(t, saves, 1)
	assert.Equal(t, theme.ModeDark, *saves[0].Patch.Theme)
	assert.Equal(t, "Paris", *saves[0].Patch.Location)

	s, _ = Transition(s, PresetSaved{Preset: theme.PresetCustom, Custom: theme.Palette{Primary: "#ff00ff"}})
	dark := theme.BasePalette(theme.ModeDark)
	assert.Equal(t, theme.Palette{Background: dark.Background, Foreground: dark.Foreground, Primary: "#ff00ff"}, s.Palette)

	s, effects = Transition(s, PresetSaved{Preset: theme.PresetRainy})
	rainy, _ := theme.PresetPalette(theme.PresetRainy)
	assert.Equal(t, rainy, s.Palette)
	saves = effectsOf[SavePreferences](effects)
	require.Len(t, saves, 1)
	assert.Equal(t, theme.PresetRainy, *saves[0].Patch.ThemePreset)
	assert.Nil(t, saves[0].Patch.CustomTheme)

	s, _ = Transition(s, PresetSaved{Preset: theme.PresetNone})
	assert.Equal(t, theme.BasePalette(theme.ModeDark), s.Palette)

	unchanged, effects := Transition(s, PresetSaved{Preset: theme.Preset("stormy")})
	assert.Empty(t, effects)
	assert.Equal(t, s.Palette, unchanged.Palette)
}

func TestTransition_UnitAndDay(t *testing.T) {
	s := startedState(t, "env-key")

	s, effects := Transition(s, UnitChanged{Unit: weather.UnitKelvin})
	assert.Equal(t, weather.UnitKelvin, s.Unit)
	require.Len(t, effectsOf[SavePreferences](effects), 1)

	_, effects = Transition(s, UnitChanged{Unit: weather.TemperatureUnit("R")})
	assert.Empty(t, effects)

	s, effects = Transition(s, DaySelected{Day: weather.DayTomorrow})
	assert.Empty(t, effects)
	assert.Equal(t, weather.DayTomorrow, s.Day)

	zero := 0.0
	assert.Equal(t, "273.1K", s.DisplayTemperature(&zero))
	assert.Equal(t, "-", s.DisplayTemperature(nil))
}

func TestTransition_LocationResolved(t *testing.T) {
	s := startedState(t, "env-key")

	next, effects := Transition(s, LocationResolved{Latitude: 51.5, Longitude: -0.12})

	assert.Equal(t, "51.5,-0.12", next.Query)
	assert.Contains(t, effects, PersistScratch{Key: ports.ScratchKeyLocation, Value: "51.5,-0.12"})
	assert.Contains(t, effects, FetchWeather{Query: "51.5,-0.12", APIKey: "env-key"})
	saves := effectsOf[SavePreferences](effects)
	require.Len(t, saves, 1)
	assert.Equal(t, 51.5, *saves[0].Patch.Latitude)
	assert.Equal(t, -0.12, *saves[0].Patch.Longitude)

	next, _ = Transition(s, LocationResolved{Latitude: 120, Longitude: 0})
	assert.Equal(t, MsgLocationFailed, next.Notification.Message)
}

func TestTransition_NonFatalFailures(t *testing.T) {
	s := startedState(t, "env-key")

	tests := []struct {
		name     string
		event    Event
		level    Level
		expected string
	}{
		{name: "SaveFailed", event: PreferenceSaveFailed{Err: fmt.Errorf("down")}, level: LevelWarning, expected: MsgPreferencesFailed},
		{name: "LoadFailed", event: PreferencesLoadFailed{Err: fmt.Errorf("down")}, level: LevelWarning, expected: MsgPreferencesMissing},
		{name: "LocationFailed", event: LocationFailed{Err: fmt.Errorf("denied")}, level: LevelError, expected: MsgLocationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := Transition(s, tt.event)

			assert.Equal(t, tt.level, next.Notification.Level)
			assert.Equal(t, tt.expected, next.Notification.Message)
			assert.Same(t, s.View, next.View)
			assert.Equal(t, s.Query, next.Query)
		})
	}
}
