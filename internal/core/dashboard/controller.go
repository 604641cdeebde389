package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// WeatherFetcher is the orchestrator as seen by the controller
type WeatherFetcher interface {
	FetchComposite(ctx context.Context, request weather.WeatherRequest) (*weather.CompositeView, error)
}

// PreferenceStore is the preference use case as seen by the controller
type PreferenceStore interface {
	Get(ctx context.Context, userID string) (*preferences.Preferences, bool, error)
	Save(ctx context.Context, userID string, patch preferences.Patch) (string, error)
}

// Controller owns the dashboard state. Transitions are serialized by a
// mutex; effects run outside it and feed their outcomes back as events.
type Controller struct {
	mu    sync.Mutex
	state State

	weather     WeatherFetcher
	preferences PreferenceStore
	geolocator  ports.Geolocator
	scratch     ports.ScratchStore
	logger      ports.Logger
	newUserID   func() string
	onChange    func(State)
}

type ControllerDependencies struct {
	Weather     WeatherFetcher
	Preferences PreferenceStore
	Geolocator  ports.Geolocator
	Scratch     ports.ScratchStore
	Logger      ports.Logger
	// EnvironmentAPIKey is the lowest priority API key
	EnvironmentAPIKey string
	// IDGenerator defaults to random UUIDs
	IDGenerator func() string
	// OnChange is called with every new state, outside the lock
	OnChange func(State)
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Preferences == nil {
		return nil, errors.NewValidationError("preference store is required")
	}
	if deps.Geolocator == nil {
		return nil, errors.NewValidationError("geolocator is required")
	}
	if deps.Scratch == nil {
		return nil, errors.NewValidationError("scratch store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	newUserID := deps.IDGenerator
	if newUserID == nil {
		newUserID = uuid.NewString
	}

	return &Controller{
		state:       NewState(deps.EnvironmentAPIKey),
		weather:     deps.Weather,
		preferences: deps.Preferences,
		geolocator:  deps.Geolocator,
		scratch:     deps.Scratch,
		logger:      deps.Logger,
		newUserID:   newUserID,
		onChange:    deps.OnChange,
	}, nil
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Start reads the scratch values once and dispatches Started. A user id is
// generated when none is stored yet.
func (c *Controller) Start(ctx context.Context) State {
	userID := c.readScratch(ctx, ports.ScratchKeyUserID)
	if userID == "" {
		userID = c.newUserID()
		c.logger.Info("Generated dashboard user id", ports.F("userId", userID))
	}

	return c.Dispatch(ctx, Started{
		UserID:        userID,
		SavedLocation: c.readScratch(ctx, ports.ScratchKeyLocation),
		ScratchAPIKey: c.readScratch(ctx, ports.ScratchKeyAPIKey),
	})
}

// Dispatch applies event, runs the resulting effects concurrently and
// dispatches their outcomes, returning once the chain has settled.
func (c *Controller) Dispatch(ctx context.Context, event Event) State {
	c.mu.Lock()
	next, effects := Transition(c.state, event)
	c.state = next
	snapshot := next.clone()
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(snapshot)
	}

	var wg sync.WaitGroup
	for _, effect := range effects {
		wg.Add(1)
		go func(effect Effect) {
			defer wg.Done()
			if outcome := c.run(ctx, effect); outcome != nil {
				c.Dispatch(ctx, outcome)
			}
		}(effect)
	}
	wg.Wait()

	return c.State()
}

func (c *Controller) run(ctx context.Context, effect Effect) Event {
	switch e := effect.(type) {
	case FetchWeather:
		view, err := c.weather.FetchComposite(ctx, weather.WeatherRequest{Query: e.Query, APIKey: e.APIKey})
		if err != nil {
			return WeatherFetchFailed{Query: e.Query, Err: err}
		}
		return WeatherFetched{Query: e.Query, View: view}

	case LoadPreferences:
		prefs, found, err := c.preferences.Get(ctx, e.UserID)
		if err != nil {
			c.logger.Warn("Failed to load preferences", ports.F("userId", e.UserID), ports.F("error", err))
			return PreferencesLoadFailed{Err: err}
		}
		return PreferencesLoaded{Preferences: prefs, Found: found}

	case SavePreferences:
		if _, err := c.preferences.Save(ctx, e.UserID, e.Patch); err != nil {
			c.logger.Warn("Failed to save preferences", ports.F("userId", e.UserID), ports.F("error", err))
			return PreferenceSaveFailed{Err: err}
		}
		return nil

	case RequestLocation:
		coords, err := c.geolocator.Locate(ctx, e.APIKey)
		if err == nil && coords == nil {
			err = errors.NewGeolocationError("no position returned", nil)
		}
		if err != nil {
			c.logger.Warn("Geolocation failed", ports.F("error", err))
			return LocationFailed{Err: err}
		}
		return LocationResolved{Latitude: coords.Latitude, Longitude: coords.Longitude}

	case PersistScratch:
		if err := c.scratch.Set(ctx, e.Key, e.Value); err != nil {
			c.logger.Warn("Failed to persist scratch value", ports.F("key", e.Key), ports.F("error", err))
		}
		return nil

	case Notify:
		c.logger.Info("Dashboard notification",
			ports.F("level", e.Notification.Level.String()),
			ports.F("message", e.Notification.Message))
		return nil

	default:
		return nil
	}
}

func (c *Controller) readScratch(ctx context.Context, key string) string {
	value, ok, err := c.scratch.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to read scratch value", ports.F("key", key), ports.F("error", err))
		return ""
	}
	if !ok {
		return ""
	}
	return value
}
