// Package tui is the terminal front-end of the dashboard. It renders the
// controller state and turns key presses into dashboard events.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/pkg/errors"
)

// Dashboard is the controller as seen by the terminal front-end
type Dashboard interface {
	Start(ctx context.Context) dashboard.State
	Dispatch(ctx context.Context, event dashboard.Event) dashboard.State
	State() dashboard.State
}

// Suggester ranks location suggestions
type Suggester interface {
	Suggest(query string, history []string) []suggestion.Suggestion
}

// inputMode selects which text input has focus
type inputMode int

const (
	modeSearch inputMode = iota
	modeAPIKey
)

// Model represents the terminal dashboard
type Model struct {
	ctx        context.Context
	controller Dashboard
	suggester  Suggester
	notifier   *Notifier

	state     dashboard.State
	mode      inputMode
	search    textinput.Model
	apiKey    textinput.Model
	navigator *suggestion.Navigator
	spinner   spinner.Model

	width  int
	height int
}

// ModelDependencies holds the collaborators of the terminal model
type ModelDependencies struct {
	Context    context.Context
	Controller Dashboard
	Suggester  Suggester
	// Notifier must be wired as the controller's OnChange callback
	Notifier *Notifier
}

// NewModel creates a new terminal dashboard model
func NewModel(deps ModelDependencies) (Model, error) {
	if deps.Controller == nil {
		return Model{}, errors.NewValidationError("controller is required")
	}
	if deps.Suggester == nil {
		return Model{}, errors.NewValidationError("suggester is required")
	}

	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = NewNotifier()
	}

	search := textinput.New()
	search.Placeholder = "Search city or \"lat,lon\"..."
	search.Prompt = "🔎 "
	search.CharLimit = 100
	search.Width = 48
	search.Focus()

	apiKey := textinput.New()
	apiKey.Placeholder = "WeatherAPI.com key (empty clears)"
	apiKey.Prompt = "🔑 "
	apiKey.CharLimit = 128
	apiKey.Width = 48
	apiKey.EchoMode = textinput.EchoPassword

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		controller: deps.Controller,
		suggester:  deps.Suggester,
		notifier:   notifier,
		state:      deps.Controller.State(),
		mode:       modeSearch,
		search:     search,
		apiKey:     apiKey,
		navigator:  suggestion.NewNavigator(),
		spinner:    s,
	}, nil
}

// Init starts the controller and begins listening for state changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.notifier.wait(), m.start())
}

func (m Model) start() tea.Cmd {
	controller, ctx := m.controller, m.ctx
	return func() tea.Msg {
		controller.Start(ctx)
		return settledMsg{}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateChangedMsg:
		m.state = m.controller.State()
		return m, m.notifier.wait()

	case settledMsg:
		m.state = m.controller.State()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeAPIKey {
			return m.handleAPIKeyInput(msg)
		}
		return m.handleSearchInput(msg)
	}

	return m, nil
}

// handleSearchInput handles keyboard input while the search box has focus
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down":
		if !m.navigator.IsOpen() {
			m.refreshSuggestions()
		}
		m.navigator.Down()
		return m, nil

	case "up":
		if !m.navigator.IsOpen() {
			m.refreshSuggestions()
		}
		m.navigator.Up()
		return m, nil

	case "esc":
		if m.navigator.IsOpen() {
			m.navigator.Close()
			return m, nil
		}
		m.search.SetValue("")
		return m, nil

	case "enter":
		return m.commit(m.navigator.Enter(m.search.Value()))

	case "tab":
		return m, m.dispatch(dashboard.DaySelected{Day: m.state.Day.Next()})

	case "ctrl+t":
		return m, m.dispatch(dashboard.ThemeChanged{Theme: m.state.Theme.Toggle()})

	case "ctrl+u":
		return m, m.dispatch(dashboard.UnitChanged{Unit: m.state.Unit.Next()})

	case "ctrl+p":
		return m, m.dispatch(dashboard.PresetSaved{Preset: m.state.Preset.Next(), Custom: m.state.Custom})

	case "ctrl+k":
		m.mode = modeAPIKey
		m.navigator.Close()
		m.search.Blur()
		m.apiKey.SetValue("")
		return m, m.apiKey.Focus()
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refreshSuggestions()
	}
	return m, cmd
}

// handleAPIKeyInput handles keyboard input while the API key box has focus
func (m Model) handleAPIKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveAPIKeyMode()
		return m, m.search.Focus()

	case "enter":
		key := m.apiKey.Value()
		m.leaveAPIKeyMode()
		return m, tea.Batch(m.dispatch(dashboard.APIKeySaved{APIKey: key}), m.search.Focus())
	}

	var cmd tea.Cmd
	m.apiKey, cmd = m.apiKey.Update(msg)
	return m, cmd
}

func (m *Model) leaveAPIKeyMode() {
	m.mode = modeSearch
	m.apiKey.SetValue("")
	m.apiKey.Blur()
}

// commit turns the navigator outcome into a dashboard event
func (m Model) commit(c suggestion.Commit) (tea.Model, tea.Cmd) {
	switch c.Kind {
	case suggestion.CommitLocate:
		m.search.SetValue("")
		return m, m.dispatch(dashboard.SuggestionSelected{Suggestion: suggestion.Suggestion{
			Text: suggestion.CurrentLocation,
			Kind: suggestion.KindCurrentLocation,
		}})
	case suggestion.CommitSearch:
		m.search.SetValue("")
		return m, m.dispatch(dashboard.SearchSubmitted{Query: c.Query})
	default:
		return m, nil
	}
}

func (m *Model) refreshSuggestions() {
	m.navigator.SetItems(m.suggester.Suggest(m.search.Value(), m.state.History))
}

// dispatch runs the event chain off the update loop
func (m Model) dispatch(event dashboard.Event) tea.Cmd {
	controller, ctx := m.controller, m.ctx
	return func() tea.Msg {
		controller.Dispatch(ctx, event)
		return settledMsg{}
	}
}

// View renders the UI
func (m Model) View() string {
	st := newStyles(m.state.Palette)

	sections := []string{
		st.title.Render("☀ Weather Dashboard"),
		m.renderInput(st),
	}
	if list := m.renderSuggestions(st); list != "" {
		sections = append(sections, list)
	}
	if status := m.renderStatus(st); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.renderWeather(st), m.renderHelp(st))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		return st.app.Width(m.width).Render(body)
	}
	return st.app.Render(body)
}
