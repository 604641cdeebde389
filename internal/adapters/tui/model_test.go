package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/pkg/errors"
)

type stubController struct {
	mu      sync.Mutex
	state   dashboard.State
	started bool
	events  []dashboard.Event
}

func (c *stubController) Start(context.Context) dashboard.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = true
	return c.state
}

func (c *stubController) Dispatch(_ context.Context, event dashboard.Event) dashboard.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return c.state
}

func (c *stubController) State() dashboard.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *stubController) setState(s dashboard.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *stubController) dispatched() []dashboard.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]dashboard.Event(nil), c.events...)
}

func newTestModel(t *testing.T) (Model, *stubController) {
	t.Helper()
	controller := &stubController{state: dashboard.NewState("")}
	m, err := NewModel(ModelDependencies{
		Context:    context.Background(),
		Controller: controller,
		Suggester:  suggestion.NewEngine([]string{"London", "Paris", "Lisbon"}),
		Notifier:   NewNotifier(),
	})
	require.NoError(t, err)
	return m, controller
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// run executes a command the way the program would and returns its message
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestNewModel_Validation(t *testing.T) {
	_, err := NewModel(ModelDependencies{Suggester: suggestion.NewEngine(nil)})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewModel(ModelDependencies{Controller: &stubController{}})
	assert.True(t, errors.IsValidationError(err))
}

func TestModel_Update_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Init_StartsController(t *testing.T) {
	m, controller := newTestModel(t)

	assert.NotNil(t, m.Init())

	assert.Equal(t, settledMsg{}, run(t, m.start()))
	assert.True(t, controller.started)
	assert.Empty(t, controller.dispatched())
}

func TestModel_TypingOpensSuggestions(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "l")

	require.True(t, m.navigator.IsOpen())
	assert.Equal(t, []string{suggestion.CurrentLocation, "London", "Lisbon"}, suggestion.Texts(m.navigator.Items()))
	assert.Equal(t, suggestion.NoSelection, m.navigator.Cursor())
	assert.Contains(t, m.View(), "London")
}

func TestModel_EnterSubmitsTypedQuery(t *testing.T) {
	m, controller := newTestModel(t)
	m = typeText(t, m, "Kyiv")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, settledMsg{}, run(t, cmd))
	assert.Equal(t, []dashboard.Event{dashboard.SearchSubmitted{Query: "Kyiv"}}, controller.dispatched())
	assert.Empty(t, m.search.Value())
	assert.False(t, m.navigator.IsOpen())
}

func TestModel_SelectingSentinelRequestsLocation(t *testing.T) {
	m, controller := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, m.navigator.IsOpen())
	assert.Equal(t, 0, m.navigator.Cursor())

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	run(t, cmd)

	assert.Equal(t, []dashboard.Event{dashboard.SuggestionSelected{Suggestion: suggestion.Suggestion{
		Text: suggestion.CurrentLocation,
		Kind: suggestion.KindCurrentLocation,
	}}}, controller.dispatched())
}

func TestModel_SelectingSuggestionSearchesIt(t *testing.T) {
	m, controller := newTestModel(t)
	m = typeText(t, m, "l")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "> ★ London")

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	run(t, cmd)

	assert.Equal(t, []dashboard.Event{dashboard.SearchSubmitted{Query: "London"}}, controller.dispatched())
}

func TestModel_EscClosesSuggestionsThenClearsInput(t *testing.T) {
	m, controller := newTestModel(t)
	m = typeText(t, m, "p")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.navigator.IsOpen())
	assert.Equal(t, "p", m.search.Value())

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Empty(t, m.search.Value())
	assert.Empty(t, controller.dispatched())
}

func TestModel_EnterOnBlankInputDoesNothing(t *testing.T) {
	m, controller := newTestModel(t)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, controller.dispatched())
}

func TestModel_ShortcutKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected dashboard.Event
	}{
		{"Day", tea.KeyMsg{Type: tea.KeyTab}, dashboard.DaySelected{Day: weather.DayTomorrow}},
		{"Theme", tea.KeyMsg{Type: tea.KeyCtrlT}, dashboard.ThemeChanged{Theme: theme.ModeDark}},
		{"Unit", tea.KeyMsg{Type: tea.KeyCtrlU}, dashboard.UnitChanged{Unit: weather.UnitCelsius.Next()}},
		{"Preset", tea.KeyMsg{Type: tea.KeyCtrlP}, dashboard.PresetSaved{Preset: theme.PresetNone.Next()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, controller := newTestModel(t)

			_, cmd := press(t, m, tt.key)
			run(t, cmd)

			assert.Equal(t, []dashboard.Event{tt.expected}, controller.dispatched())
		})
	}
}

func TestModel_APIKeyEntry(t *testing.T) {
	m, controller := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	require.Equal(t, modeAPIKey, m.mode)

	m = typeText(t, m, "secret")
	assert.NotContains(t, m.View(), "secret")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeSearch, m.mode)

	batch, ok := run(t, cmd).(tea.BatchMsg)
	require.True(t, ok)
	require.NotEmpty(t, batch)
	assert.Equal(t, settledMsg{}, run(t, batch[0]))

	assert.Equal(t, []dashboard.Event{dashboard.APIKeySaved{APIKey: "secret"}}, controller.dispatched())
	assert.Empty(t, m.search.Value())
}

func TestModel_APIKeyEntryCancelled(t *testing.T) {
	m, controller := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	m = typeText(t, m, "abc")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeSearch, m.mode)
	assert.Empty(t, m.apiKey.Value())
	assert.Empty(t, controller.dispatched())
}

func TestModel_StateChangeRereadsController(t *testing.T) {
	m, controller := newTestModel(t)

	s := dashboard.NewState("")
	s.Query = "Paris"
	s.View = &weather.CompositeView{
		Location: weather.Location{Name: "Paris", Country: "France"},
		Current:  weather.CurrentConditions{TempC: 21.44, Condition: weather.Condition{Text: "Sunny"}},
		Today: weather.DayForecast{
			Date:     "2024-06-15",
			MaxTempC: 25,
			MinTempC: 14,
			Hours:    []weather.HourlyForecast{{Time: "2024-06-15 00:00", TempC: 15}},
		},
	}
	s.Notification = &dashboard.Notification{Level: dashboard.LevelSuccess, Message: "Weather updated"}
	controller.setState(s)

	updated, cmd := m.Update(stateChangedMsg{})
	m = updated.(Model)

	assert.NotNil(t, cmd)
	assert.Equal(t, "Paris", m.state.Query)

	view := m.View()
	assert.Contains(t, view, "Paris, France")
	assert.Contains(t, view, "21.4°C")
	assert.Contains(t, view, "Sunny")
	assert.Contains(t, view, "Weather updated")
	assert.Contains(t, view, "00:00")
}

func TestModel_ViewWithoutWeather(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Contains(t, m.View(), "Search for a location")
	assert.Contains(t, m.View(), "no API key")
}

func TestNotifier_CoalescesChanges(t *testing.T) {
	n := NewNotifier()

	n.Notify(dashboard.State{})
	n.Notify(dashboard.State{})
	n.Notify(dashboard.State{})

	done := make(chan tea.Msg, 1)
	go func() { done <- n.wait()() }()

	select {
	case msg := <-done:
		assert.Equal(t, stateChangedMsg{}, msg)
	case <-time.After(time.Second):
		t.Fatal("expected a pending notification")
	}

	assert.Empty(t, n.ch)
}
