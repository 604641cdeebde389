package dashboard

import (
	"strings"

	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// Messages shown to the user
const (
	MsgWeatherUpdated     = "Weather data updated!"
	MsgFetchFailed        = "Failed to fetch weather data. Please check your API key."
	MsgLocationNotFound   = "No matching location found. Try another search."
	MsgAPIKeyMissing      = "Weather API key is not configured. Press ctrl+k to add one."
	MsgAPIKeyRejected     = "The weather API rejected the API key."
	MsgLocationFailed     = "Unable to get location. Please search manually."
	MsgLocating           = "Locating..."
	MsgPreferencesFailed  = "Preferences could not be saved; changes apply to this session only."
	MsgPreferencesMissing = "Preferences are unavailable; using defaults."
	MsgAPIKeySaved        = "API key saved."
	MsgAPIKeyCleared      = "API key cleared."
)

// Transition applies event to state and returns the new state together with
// the effects to run. It does no I/O.
func Transition(state State, event Event) (State, []Effect) {
	s := state.clone()

	switch e := event.(type) {
	case Started:
		return s.started(e)
	case PreferencesLoaded:
		return s.preferencesLoaded(e)
	case PreferencesLoadFailed:
		s.PreferencesLoaded = true
		next, effects := s.resume()
		next, warning := next.notify(LevelWarning, MsgPreferencesMissing)
		return next, append(effects, warning...)
	case SearchSubmitted:
		return s.search(e.Query)
	case SuggestionSelected:
		if e.Suggestion.IsCurrentLocation() {
			return s.requestLocation()
		}
		return s.search(e.Suggestion.Text)
	case LocationResolved:
		return s.locationResolved(e)
	case LocationFailed:
		return s.notify(LevelError, MsgLocationFailed)
	case WeatherFetched:
		if !s.Loading || e.Query != s.PendingQuery {
			return state, nil
		}
		s.View = e.View
		s.Loading = false
		s.PendingQuery = ""
		return s.notify(LevelSuccess, MsgWeatherUpdated)
	case WeatherFetchFailed:
		if !s.Loading || e.Query != s.PendingQuery {
			return state, nil
		}
		s.Loading = false
		s.PendingQuery = ""
		return s.notify(LevelError, fetchFailureMessage(e.Err))
	case ThemeChanged:
		if !e.Theme.IsValid() {
			return state, nil
		}
		s.Theme = e.Theme
		s.Palette = s.paletteOver(theme.BasePalette(s.Theme))
		return s, s.save(preferences.Patch{Theme: &s.Theme, TemperatureUnit: &s.Unit, Location: s.locationField()})
	case UnitChanged:
		if !e.Unit.IsValid() {
			return state, nil
		}
		s.Unit = e.Unit
		return s, s.save(preferences.Patch{TemperatureUnit: &s.Unit, Theme: &s.Theme, Location: s.locationField()})
	case APIKeySaved:
		return s.apiKeySaved(e)
	case PresetSaved:
		return s.presetSaved(e)
	case DaySelected:
		s.Day = e.Day
		return s, nil
	case PreferenceSaveFailed:
		return s.notify(LevelWarning, MsgPreferencesFailed)
	default:
		return state, nil
	}
}

func (s State) started(e Started) (State, []Effect) {
	s.UserID = strings.TrimSpace(e.UserID)
	s.Keys.Scratch = strings.TrimSpace(e.ScratchAPIKey)

	effects := []Effect{
		PersistScratch{Key: ports.ScratchKeyUserID, Value: s.UserID},
		LoadPreferences{UserID: s.UserID},
	}

	location := strings.TrimSpace(e.SavedLocation)
	if location == "" {
		if _, source := s.APIKey(); source == preferences.KeySourceNone {
			s.LocateDeferred = true
			return s, effects
		}
		next, more := s.requestLocation()
		return next, append(effects, more...)
	}

	s.Query = location
	next, more := s.fetch(location)
	return next, append(effects, more...)
}

func (s State) preferencesLoaded(e PreferencesLoaded) (State, []Effect) {
	s.PreferencesLoaded = true
	if !e.Found || e.Preferences == nil {
		return s.resume()
	}

	prefs := e.Preferences
	s.Unit = prefs.TemperatureUnit
	s.Theme = prefs.Theme
	s.Preset = prefs.ThemePreset
	s.Custom = prefs.Custom()
	s.Keys.Preference = prefs.APIKey
	s.History = append([]string{}, prefs.SearchHistory...)
	s.Palette = s.paletteOver(theme.BasePalette(s.Theme))

	location := strings.TrimSpace(prefs.Location)
	if location == "" || strings.EqualFold(location, s.Query) {
		return s.resume()
	}
	s.LocateDeferred = false
	s.Query = location
	return s.fetch(location)
}

// resume finishes start-up work that could not run before the preferences
// arrived: a deferred geolocation, or a fetch that had no API key then.
func (s State) resume() (State, []Effect) {
	if s.LocateDeferred {
		s.LocateDeferred = false
		return s.requestLocation()
	}

	_, source := s.APIKey()
	if s.Query == "" || s.View != nil || s.Loading || source == preferences.KeySourceNone {
		return s, nil
	}
	return s.fetch(s.Query)
}

func (s State) search(query string) (State, []Effect) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s, nil
	}

	s.Query = query
	s.History = preferences.AddToHistory(s.History, query)

	effects := []Effect{PersistScratch{Key: ports.ScratchKeyLocation, Value: query}}
	effects = append(effects, s.save(preferences.Patch{
		Location:        &query,
		TemperatureUnit: &s.Unit,
		Theme:           &s.Theme,
		SearchHistory:   s.History,
	})...)

	next, more := s.fetch(query)
	return next, append(effects, more...)
}

func (s State) requestLocation() (State, []Effect) {
	key, _ := s.APIKey()
	s.Notification = &Notification{Level: LevelInfo, Message: MsgLocating}
	return s, []Effect{RequestLocation{APIKey: key}}
}

func (s State) locationResolved(e LocationResolved) (State, []Effect) {
	if !validation.IsValidLatitude(e.Latitude) || !validation.IsValidLongitude(e.Longitude) {
		return s.notify(LevelError, MsgLocationFailed)
	}

	coords := validation.FormatCoordinates(e.Latitude, e.Longitude)
	s.Query = coords

	lat, lon := e.Latitude, e.Longitude
	effects := []Effect{PersistScratch{Key: ports.ScratchKeyLocation, Value: coords}}
	effects = append(effects, s.save(preferences.Patch{
		Latitude:        &lat,
		Longitude:       &lon,
		Location:        &coords,
		TemperatureUnit: &s.Unit,
		Theme:           &s.Theme,
	})...)

	next, more := s.fetch(coords)
	return next, append(effects, more...)
}

func (s State) apiKeySaved(e APIKeySaved) (State, []Effect) {
	key := strings.TrimSpace(e.APIKey)
	s.Keys.Session = key
	s.Keys.Preference = key

	message := MsgAPIKeySaved
	if key == "" {
		message = MsgAPIKeyCleared
	}
	s.Notification = &Notification{Level: LevelInfo, Message: message}

	effects := []Effect{PersistScratch{Key: ports.ScratchKeyAPIKey, Value: key}}
	effects = append(effects, s.save(preferences.Patch{APIKey: &key})...)
	if key == "" || s.Query == "" {
		return s, effects
	}

	next, more := s.fetch(s.Query)
	return next, append(effects, more...)
}

func (s State) presetSaved(e PresetSaved) (State, []Effect) {
	if e.Preset != theme.PresetNone && !e.Preset.IsValid() {
		return s, nil
	}

	s.Preset = e.Preset
	patch := preferences.Patch{ThemePreset: &s.Preset}
	if e.Preset == theme.PresetCustom {
		s.Custom = e.Custom
		custom := e.Custom
		patch.CustomTheme = &custom
	}
	s.Palette = s.paletteOver(s.Palette)
	return s, s.save(patch)
}

// fetch starts a weather fetch for query, or reports a configuration error
// when no API key can be resolved.
func (s State) fetch(query string) (State, []Effect) {
	key, source := s.APIKey()
	if source == preferences.KeySourceNone {
		s.Loading = false
		s.PendingQuery = ""
		return s.notify(LevelError, MsgAPIKeyMissing)
	}

	s.Loading = true
	s.PendingQuery = query
	return s, []Effect{FetchWeather{Query: query, APIKey: key}}
}

// paletteOver resolves the applied palette. Without a preset the palette
// follows the light/dark mode.
func (s State) paletteOver(current theme.Palette) theme.Palette {
	if s.Preset == theme.PresetNone {
		return theme.BasePalette(s.Theme)
	}
	return theme.Resolve(s.Preset, s.Custom, current)
}

func (s State) save(patch preferences.Patch) []Effect {
	if s.UserID == "" {
		return nil
	}
	return []Effect{SavePreferences{UserID: s.UserID, Patch: patch}}
}

func (s State) locationField() *string {
	if s.Query == "" {
		return nil
	}
	location := s.Query
	return &location
}

func (s State) notify(level Level, message string) (State, []Effect) {
	n := Notification{Level: level, Message: message}
	s.Notification = &n
	return s, []Effect{Notify{Notification: n}}
}

func fetchFailureMessage(err error) string {
	switch errors.TypeOf(err) {
	case errors.NotFoundError:
		return MsgLocationNotFound
	case errors.ConfigurationError:
		return MsgAPIKeyRejected
	default:
		return MsgFetchFailed
	}
}

// DisplayTemperature formats a Celsius value in the state's unit
func (s State) DisplayTemperature(celsius *float64) string {
	value := weather.FormatTemperature(celsius, s.Unit)
	if value == weather.MissingValue {
		return value
	}
	return value + s.Unit.Symbol()
}
