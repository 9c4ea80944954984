package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mixtape/internal/playlist"
)

// keyMap holds the editor key bindings. The help line is generated
// from these so the two never drift apart.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Combine key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick up/put down"),
		),
		Combine: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "combine in current order"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// commandFor maps one decoded key event to an editor command. Unbound
// keys degrade to Ignore; input never errors.
func (k keyMap) commandFor(msg tea.KeyMsg) playlist.Command {
	switch {
	case key.Matches(msg, k.Up):
		return playlist.MoveUp
	case key.Matches(msg, k.Down):
		return playlist.MoveDown
	case key.Matches(msg, k.Pick):
		return playlist.TogglePick
	case key.Matches(msg, k.Combine):
		return playlist.Combine
	case key.Matches(msg, k.Quit):
		return playlist.Quit
	default:
		return playlist.Ignore
	}
}
