// Package dashboard holds the explicit application state of the dashboard
// and the transitions that drive it.
package dashboard

import (
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
)

// Level is the severity of a notification
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a transient message for the user
type Notification struct {
	Level   Level
	Message string
}

// State is everything the dashboard shows. It is only changed by Transition.
type State struct {
	UserID string
	// Query is the active location, free text or "lat,lon"
	Query   string
	Unit    weather.TemperatureUnit
	Theme   theme.Mode
	Preset  theme.Preset
	Custom  theme.Palette
	Palette theme.Palette
	Keys    preferences.APIKeySources
	History []string
	Day     weather.Day
	// View is the last successful fetch; failures keep it
	View    *weather.CompositeView
	Loading bool
	// PendingQuery is the query of the fetch in flight
	PendingQuery      string
	PreferencesLoaded bool
	// LocateDeferred holds back start-up geolocation until the persisted
	// preferences had a chance to supply an API key
	LocateDeferred bool
	Notification   *Notification
}

// NewState returns the state before start-up, with the environment default
// as the lowest priority API key.
func NewState(environmentAPIKey string) State {
	return State{
		Unit:    weather.UnitCelsius,
		Theme:   theme.ModeLight,
		Palette: theme.BasePalette(theme.ModeLight),
		Keys:    preferences.APIKeySources{Environment: environmentAPIKey},
		History: []string{},
		Day:     weather.DayToday,
	}
}

// APIKey returns the resolved key and its source
func (s State) APIKey() (string, preferences.KeySource) {
	return s.Keys.Resolve()
}

// SelectedDay returns the forecast of the selected day, if a view exists
func (s State) SelectedDay() (weather.DayForecast, bool) {
	if s.View == nil {
		return weather.DayForecast{}, false
	}
	return s.View.Select(s.Day), true
}

func (s State) clone() State {
	c := s
	c.History = append([]string{}, s.History...)
	if s.Notification != nil {
		n := *s.Notification
		c.Notification = &n
	}
	return c
}
