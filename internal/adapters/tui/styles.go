package tui

import (
	"github.com/charmbracelet/lipgloss"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/theme"
)

var (
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorWarning = lipgloss.Color("#FFD93D")
	colorSuccess = lipgloss.Color("#6BCF7F")
	colorMuted   = lipgloss.Color("#6C757D")
)

// styles are derived from the resolved palette on every render
type styles struct {
	app        lipgloss.Style
	title      lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	muted      lipgloss.Style
	help       lipgloss.Style
	box        lipgloss.Style
	selected   lipgloss.Style
	suggestion lipgloss.Style
	activeDay  lipgloss.Style
	day        lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	p = p.Complete(theme.DefaultPalette)
	background := lipgloss.Color(p.Background)
	foreground := lipgloss.Color(p.Foreground)
	primary := lipgloss.Color(p.Primary)

	return styles{
		app: lipgloss.NewStyle().
			Background(background).
			Foreground(foreground).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		label: lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true),
		value: lipgloss.NewStyle().
			Foreground(foreground),
		muted: lipgloss.NewStyle().
			Foreground(colorMuted),
		help: lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0, 0, 0),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(background).
			Background(primary),
		suggestion: lipgloss.NewStyle().
			Foreground(foreground),
		activeDay: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(primary),
		day: lipgloss.NewStyle().
			Foreground(colorMuted),
	}
}

func notificationStyle(level dashboard.Level) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch level {
	case dashboard.LevelError:
		return style.Foreground(colorDanger)
	case dashboard.LevelWarning:
		return style.Foreground(colorWarning)
	case dashboard.LevelSuccess:
		return style.Foreground(colorSuccess)
	default:
		return style.Foreground(colorMuted)
	}
}
