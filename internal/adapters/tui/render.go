package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/weather"
)

// hourStep thins the hourly strip to every third hour
const hourStep = 3

var dayOrder = []weather.Day{weather.DayYesterday, weather.DayToday, weather.DayTomorrow}

func (m Model) renderInput(st styles) string {
	if m.mode == modeAPIKey {
		return st.box.Render(lipgloss.JoinVertical(lipgloss.Left,
			st.label.Render("API key"),
			m.apiKey.View(),
		))
	}
	return st.box.Render(m.search.View())
}

func (m Model) renderSuggestions(st styles) string {
	if m.mode != modeSearch || !m.navigator.IsOpen() {
		return ""
	}

	cursor := m.navigator.Cursor()
	lines := make([]string, 0, len(m.navigator.Items()))
	for i, item := range m.navigator.Items() {
		line := suggestionLabel(item)
		if i == cursor {
			lines = append(lines, st.selected.Render("> "+line))
			continue
		}
		lines = append(lines, st.suggestion.Render("  "+line))
	}
	return strings.Join(lines, "\n")
}

func suggestionLabel(s suggestion.Suggestion) string {
	switch s.Kind {
	case suggestion.KindCurrentLocation:
		return "📍 " + s.Text
	case suggestion.KindHistory:
		return "🕘 " + s.Text
	case suggestion.KindPopular:
		return "★ " + s.Text
	default:
		return "↵ " + s.Text
	}
}

func (m Model) renderStatus(st styles) string {
	var parts []string
	if m.state.Loading {
		parts = append(parts, fmt.Sprintf("%s Loading %s...", m.spinner.View(), m.state.PendingQuery))
	}
	if n := m.state.Notification; n != nil && n.Message != "" {
		parts = append(parts, notificationStyle(n.Level).Render(n.Message))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderWeather(st styles) string {
	view := m.state.View
	if view == nil {
		return st.muted.Render("Search for a location to see the weather.")
	}

	location := view.Location.Name
	if view.Location.Country != "" {
		location += ", " + view.Location.Country
	}

	current := view.Current
	temp, feels := current.TempC, current.FeelsLikeC
	header := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(location),
		st.muted.Render(view.Location.LocalTime),
		fmt.Sprintf("%s  %s",
			st.value.Bold(true).Render(m.state.DisplayTemperature(&temp)),
			st.value.Render(current.Condition.Text)),
		m.field(st, "Feels like", m.state.DisplayTemperature(&feels)),
		m.field(st, "Humidity", fmt.Sprintf("%d%%", current.Humidity)),
		m.field(st, "Wind", fmt.Sprintf("%.0f km/h %s", current.WindKph, current.WindDir)),
		m.field(st, "UV", fmt.Sprintf("%.0f", current.UV)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		st.box.Render(header),
		m.renderDays(st),
		m.renderSelectedDay(st),
	)
}

func (m Model) field(st styles, label, value string) string {
	return st.label.Render(label+": ") + st.value.Render(value)
}

func (m Model) renderDays(st styles) string {
	tabs := make([]string, 0, len(dayOrder))
	for _, d := range dayOrder {
		name := strings.ToUpper(d.String()[:1]) + d.String()[1:]
		if d == m.state.Day {
			tabs = append(tabs, st.activeDay.Render(name))
			continue
		}
		tabs = append(tabs, st.day.Render(name))
	}
	return strings.Join(tabs, "   ")
}

func (m Model) renderSelectedDay(st styles) string {
	day, ok := m.state.SelectedDay()
	if !ok {
		return ""
	}

	maxTemp, minTemp := day.MaxTempC, day.MinTempC
	lines := []string{
		fmt.Sprintf("%s  %s  %s",
			st.label.Render(day.Date),
			st.value.Render(day.Condition.Text),
			st.value.Render(fmt.Sprintf("↑%s ↓%s",
				m.state.DisplayTemperature(&maxTemp),
				m.state.DisplayTemperature(&minTemp)))),
		m.field(st, "Rain", fmt.Sprintf("%d%% / %.1f mm", day.ChanceOfRain, day.TotalPrecipMm)),
	}

	var hours []string
	for i := 0; i < len(day.Hours); i += hourStep {
		h := day.Hours[i]
		t := h.TempC
		hours = append(hours, fmt.Sprintf("%s %s", st.muted.Render(hourOf(h.Time)), m.state.DisplayTemperature(&t)))
	}
	if len(hours) > 0 {
		lines = append(lines, strings.Join(hours, "  "))
	}

	return st.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// hourOf extracts "15:00" from "2024-06-15 15:00"
func hourOf(t string) string {
	if i := strings.LastIndex(t, " "); i >= 0 {
		return t[i+1:]
	}
	return t
}

func (m Model) renderHelp(st styles) string {
	if m.mode == modeAPIKey {
		return st.help.Render("enter: save key • esc: cancel")
	}
	key, source := m.state.APIKey()
	keyInfo := "no API key"
	if key != "" {
		keyInfo = "key: " + source.String()
	}
	return st.help.Render(fmt.Sprintf(
		"↑/↓: suggestions • enter: search • tab: day • ctrl+t: %s • ctrl+u: %s • ctrl+p: preset (%s) • ctrl+k: API key (%s) • ctrl+c: quit",
		m.state.Theme, m.state.Unit.Symbol(), m.state.Preset, keyInfo,
	))
}
