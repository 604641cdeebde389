package dashboard

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

type stubFetcher struct {
	mu       sync.Mutex
	requests []weather.WeatherRequest
	fetch    func(request weather.WeatherRequest) (*weather.CompositeView, error)
}

func (f *stubFetcher) FetchComposite(_ context.Context, request weather.WeatherRequest) (*weather.CompositeView, error) {
	f.mu.Lock()
	f.requests = append(f.requests, request)
	f.mu.Unlock()
	return f.fetch(request)
}

type stubPreferences struct {
	mu      sync.Mutex
	stored  *preferences.Preferences
	saves   []preferences.Patch
	saveErr error
	getErr  error
}

func (p *stubPreferences) Get(_ context.Context, _ string) (*preferences.Preferences, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.getErr != nil {
		return nil, false, p.getErr
	}
	return p.stored, p.stored != nil, nil
}

func (p *stubPreferences) Save(_ context.Context, _ string, patch preferences.Patch) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves = append(p.saves, patch)
	if p.saveErr != nil {
		return "", p.saveErr
	}
	return "record-1", nil
}

func viewFor(request weather.WeatherRequest) (*weather.CompositeView, error) {
	return &weather.CompositeView{Location: weather.Location{Name: request.Query}}, nil
}

type controllerFixture struct {
	controller  *Controller
	fetcher     *stubFetcher
	preferences *stubPreferences
	geolocator  *mocks.Geolocator
	scratch     *mocks.ScratchStore
}

func newControllerFixture(t *testing.T, envKey string) *controllerFixture {
	f := &controllerFixture{
		fetcher:     &stubFetcher{fetch: viewFor},
		preferences: &stubPreferences{},
		geolocator:  mocks.NewGeolocator(t),
		scratch:     mocks.NewScratchStore(t),
	}

	controller, err := NewController(ControllerDependencies{
		Weather:           f.fetcher,
		Preferences:       f.preferences,
		Geolocator:        f.geolocator,
		Scratch:           f.scratch,
		Logger:            mocks.NewNopLogger(t),
		EnvironmentAPIKey: envKey,
		IDGenerator:       func() string { return "generated-user" },
	})
	require.NoError(t, err)
	f.controller = controller
	return f
}

func TestController_Start_FirstRunGeolocates(t *testing.T) {
	f := newControllerFixture(t, "env-key")

	f.scratch.EXPECT().Get(mock.Anything, mock.Anything).Return("", false, nil)
	f.scratch.EXPECT().Set(mock.Anything, ports.ScratchKeyUserID, "generated-user").Return(nil).Once()
	f.scratch.EXPECT().Set(mock.Anything, ports.ScratchKeyLocation, "51.5,-0.12").Return(nil).Once()
	f.geolocator.EXPECT().Locate(mock.Anything, "env-key").
		Return(&ports.Coordinates{Latitude: 51.5, Longitude: -0.12}, nil).Once()

	state := f.controller.Start(context.Background())

	assert.Equal(t, "generated-user", state.UserID)
	assert.Equal(t, "51.5,-0.12", state.Query)
	assert.False(t, state.Loading)
	require.NotNil(t, state.View)
	assert.Equal(t, "51.5,-0.12", state.View.Location.Name)
	assert.Equal(t, MsgWeatherUpdated, state.Notification.Message)
	require.Len(t, f.preferences.saves, 1)
	assert.Equal(t, 51.5, *f.preferences.saves[0].Latitude)
}

func TestController_Start_RestoresScratchValues(t *testing.T) {
	f := newControllerFixture(t, "")

	f.scratch.EXPECT().Get(mock.Anything, ports.ScratchKeyUserID).Return("user-7", true, nil)
	f.scratch.EXPECT().Get(mock.Anything, ports.ScratchKeyLocation).Return("Paris", true, nil)
	f.scratch.EXPECT().Get(mock.Anything, ports.ScratchKeyAPIKey).Return("local-key", true, nil)
	f.scratch.EXPECT().Set(mock.Anything, ports.ScratchKeyUserID, "user-7").Return(nil).Once()

	state := f.controller.Start(context.Background())

	assert.Equal(t, "user-7", state.UserID)
	require.NotNil(t, state.View)
	assert.Equal(t, "Paris", state.View.Location.Name)
	require.Len(t, f.fetcher.requests, 1)
	assert.Equal(t, weather.WeatherRequest{Query: "Paris", APIKey: "local-key"}, f.fetcher.requests[0])
}

func TestController_Start_UsesPersistedKey(t *testing.T) {
	f := newControllerFixture(t, "")
	f.preferences.stored = &preferences.Preferences{UserID: "user-7", Location: "London", APIKey: "persisted-key"}

	f.scratch.EXPECT().Get(mock.Anything, ports.ScratchKeyUserID).Return("user-7", true, nil)
	f.scratch.EXPECT().Get(mock.Anything, ports.ScratchKeyLocation).Return("London", true, nil)
	f.scratch.EXPECT().Get(mock.Anything, ports.ScratchKeyAPIKey).Return("", false, nil)
	f.scratch.EXPECT().Set(mock.Anything, ports.ScratchKeyUserID, "user-7").Return(nil).Once()

	state := f.controller.Start(context.Background())

	require.NotNil(t, state.View)
	assert.Equal(t, "London", state.View.Location.Name)
	require.Len(t, f.fetcher.requests, 1)
	assert.Equal(t, weather.WeatherRequest{Query: "London", APIKey: "persisted-key"}, f.fetcher.requests[0])
}

func TestController_Dispatch_FetchFailureKeepsView(t *testing.T) {
	f := newControllerFixture(t, "env-key")
	f.scratch.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	ctx := context.Background()
	f.controller.Dispatch(ctx, Started{UserID: "user-1", SavedLocation: "Paris"})

	f.fetcher.fetch = func(weather.WeatherRequest) (*weather.CompositeView, error) {
		return nil, fmt.Errorf("history request failed")
	}
	state := f.controller.Dispatch(ctx, SearchSubmitted{Query: "Atlantis"})

	require.NotNil(t, state.View)
	assert.Equal(t, "Paris", state.View.Location.Name)
	assert.Equal(t, "Atlantis", state.Query)
	assert.Equal(t, []string{"Atlantis"}, state.History)
	assert.Equal(t, MsgFetchFailed, state.Notification.Message)
}

func TestController_Dispatch_PreferenceFailuresAreNonFatal(t *testing.T) {
	f := newControllerFixture(t, "env-key")
	f.preferences.saveErr = fmt.Errorf("store unavailable")
	f.preferences.getErr = fmt.Errorf("store unavailable")
	f.scratch.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

	ctx := context.Background()
	f.controller.Dispatch(ctx, Started{UserID: "user-1", SavedLocation: "Paris"})
	state := f.controller.Dispatch(ctx, UnitChanged{Unit: weather.UnitFahrenheit})

	assert.Equal(t, weather.UnitFahrenheit, state.Unit)
	assert.Equal(t, MsgPreferencesFailed, state.Notification.Message)
	require.NotNil(t, state.View)
	assert.True(t, state.PreferencesLoaded)
}

func TestController_Dispatch_GeolocationFailure(t *testing.T) {
	f := newControllerFixture(t, "env-key")
	f.geolocator.EXPECT().Locate(mock.Anything, "env-key").Return(nil, fmt.Errorf("permission denied")).Once()

	state := f.controller.Dispatch(context.Background(), SuggestionSelected{
		Suggestion: suggestion.Suggestion{Text: suggestion.CurrentLocation, Kind: suggestion.KindCurrentLocation},
	})

	assert.Equal(t, LevelError, state.Notification.Level)
	assert.Equal(t, MsgLocationFailed, state.Notification.Message)
	assert.Empty(t, f.fetcher.requests)
}

func TestController_OnChangeReceivesEveryState(t *testing.T) {
	var mu sync.Mutex
	var seen []State

	controller, err := NewController(ControllerDependencies{
		Weather:     &stubFetcher{fetch: viewFor},
		Preferences: &stubPreferences{},
		Geolocator:  mocks.NewGeolocator(t),
		Scratch:     mocks.NewScratchStore(t),
		Logger:      mocks.NewNopLogger(t),
		OnChange: func(s State) {
			mu.Lock()
			seen = append(seen, s)
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	controller.Dispatch(context.Background(), DaySelected{Day: weather.DayYesterday})

	require.Len(t, seen, 1)
	assert.Equal(t, weather.DayYesterday, seen[0].Day)
}

func TestNewController_Validation(t *testing.T) {
	_, err := NewController(ControllerDependencies{})
	assert.ErrorContains(t, err, "weather fetcher is required")

	_, err = NewController(ControllerDependencies{Weather: &stubFetcher{}})
	assert.ErrorContains(t, err, "preference store is required")

	_, err = NewController(ControllerDependencies{Weather: &stubFetcher{}, Preferences: &stubPreferences{}})
	assert.ErrorContains(t, err, "geolocator is required")
}
