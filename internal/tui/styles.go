package tui

import (
	"github.com/charmbracelet/lipgloss"

	"mixtape/internal/config"
)

// styles is the lipgloss style set for the editor view, built from the
// theme section of the configuration.
type styles struct {
	Title         lipgloss.Style
	Path          lipgloss.Style
	Plain         lipgloss.Style
	Focused       lipgloss.Style
	Picked        lipgloss.Style
	PickedFocused lipgloss.Style
	Help          lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Picked)).
			MarginBottom(1),
		Path: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")),
		Plain: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Focused)).
			Bold(true),
		Picked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Picked)).
			Bold(true),
		PickedFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(cfg.Theme.Picked)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Help)),
	}
}
