package dashboard

import "weatherdash.app/internal/core/preferences"

// Effect is an external call requested by Transition
type Effect interface {
	isEffect()
}

type FetchWeather struct {
	Query  string
	APIKey string
}

type LoadPreferences struct {
	UserID string
}

type SavePreferences struct {
	UserID string
	Patch  preferences.Patch
}

// RequestLocation asks the geolocator for the device position. APIKey is
// passed along for lookups that go through the weather provider.
type RequestLocation struct {
	APIKey string
}

type PersistScratch struct {
	Key   string
	Value string
}

type Notify struct {
	Notification Notification
}

func (FetchWeather) isEffect()    {}
func (LoadPreferences) isEffect() {}
func (SavePreferences) isEffect() {}
func (RequestLocation) isEffect() {}
func (PersistScratch) isEffect()  {}
func (Notify) isEffect()          {}
