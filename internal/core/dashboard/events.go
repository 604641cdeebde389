package dashboard

import (
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
)

// Event is an input to Transition
type Event interface {
	isEvent()
}

// Started carries the scratch values read once at start-up
type Started struct {
	UserID        string
	SavedLocation string
	ScratchAPIKey string
}

type PreferencesLoaded struct {
	Preferences *preferences.Preferences
	Found       bool
}

type PreferencesLoadFailed struct {
	Err error
}

type SearchSubmitted struct {
	Query string
}

type SuggestionSelected struct {
	Suggestion suggestion.Suggestion
}

type LocationResolved struct {
	Latitude  float64
	Longitude float64
}

type LocationFailed struct {
	Err error
}

type WeatherFetched struct {
	Query string
	View  *weather.CompositeView
}

type WeatherFetchFailed struct {
	Query string
	Err   error
}

type ThemeChanged struct {
	Theme theme.Mode
}

type UnitChanged struct {
	Unit weather.TemperatureUnit
}

// APIKeySaved sets the session key. An empty key clears it.
type APIKeySaved struct {
	APIKey string
}

type PresetSaved struct {
	Preset theme.Preset
	Custom theme.Palette
}

type DaySelected struct {
	Day weather.Day
}

type PreferenceSaveFailed struct {
	Err error
}

func (Started) isEvent()               {}
func (PreferencesLoaded) isEvent()     {}
func (PreferencesLoadFailed) isEvent() {}
func (SearchSubmitted) isEvent()       {}
func (SuggestionSelected) isEvent()    {}
func (LocationResolved) isEvent()      {}
func (LocationFailed) isEvent()        {}
func (WeatherFetched) isEvent()        {}
func (WeatherFetchFailed) isEvent()    {}
func (ThemeChanged) isEvent()          {}
func (UnitChanged) isEvent()           {}
func (APIKeySaved) isEvent()           {}
func (PresetSaved) isEvent()           {}
func (DaySelected) isEvent()           {}
func (PreferenceSaveFailed) isEvent()  {}
