// Package tui is the interactive front end of the track editor. It
// drives the playlist state machine from decoded key events and renders
// it with lipgloss; raw terminal mode and its guaranteed restoration
// are owned by the bubbletea program that runs the Model.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mixtape/internal/config"
	"mixtape/internal/playlist"
)

// Outcome is how the editor session ended.
type Outcome int

const (
	// OutcomeQuit covers every exit that should not combine: the quit
	// key, an interrupt, or the input stream closing.
	OutcomeQuit Outcome = iota
	// OutcomeCombine means the user confirmed the current order.
	OutcomeCombine
)

// Model is the bubbletea model for the editor session. It is a value;
// every Update returns a new snapshot.
type Model struct {
	state    playlist.State
	keys     keyMap
	styles   styles
	inputDir string
	output   string
	outcome  Outcome
}

// New creates a Model over a non-empty track list.
func New(tracks []string, inputDir, output string, cfg *config.Config) Model {
	return Model{
		state:    playlist.New(tracks),
		keys:     defaultKeyMap(),
		styles:   newStyles(cfg),
		inputDir: inputDir,
		output:   output,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key events become playlist commands;
// terminal commands record the outcome and stop the program.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch cmd := m.keys.commandFor(keyMsg); cmd {
	case playlist.Combine:
		m.outcome = OutcomeCombine
		return m, tea.Quit
	case playlist.Quit:
		m.outcome = OutcomeQuit
		return m, tea.Quit
	default:
		m.state = playlist.Apply(m.state, cmd)
		return m, nil
	}
}

// View implements tea.Model. Row decoration precedence: picked and
// focused, then picked, then focused, then plain. In practice the
// picked row is also the focused one, but the renderer does not rely
// on that.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("mixtape") + "\n")
	sb.WriteString(m.styles.Path.Render("Input folder: "+m.inputDir) + "\n")
	sb.WriteString(m.styles.Path.Render("Output file:  "+m.output) + "\n\n")

	sb.WriteString("Audio files found:\n")
	for i, name := range m.state.Tracks {
		switch {
		case i == m.state.Focus && i == m.state.Picked:
			sb.WriteString(m.styles.PickedFocused.Render("◆ "+name) + "\n")
		case i == m.state.Picked:
			sb.WriteString(m.styles.Picked.Render("◆ "+name) + "\n")
		case i == m.state.Focus:
			sb.WriteString(m.styles.Focused.Render("▸ "+name) + "\n")
		default:
			sb.WriteString(m.styles.Plain.Render("  "+name) + "\n")
		}
	}

	sb.WriteString("\n" + m.styles.Help.Render(m.helpLine()) + "\n")
	if m.state.Dragging() {
		sb.WriteString(m.styles.Help.Render("Track picked up: ↑/↓ now move it in the list") + "\n")
	} else {
		sb.WriteString(m.styles.Help.Render("Pick up a track to reorder it, then put it down") + "\n")
	}

	return sb.String()
}

func (m Model) helpLine() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Pick, m.keys.Combine, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("[%s] %s", b.Help().Key, b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}

// Outcome reports how the session ended. Meaningful after the program
// returns.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Tracks returns the track order at the end of the session.
func (m Model) Tracks() []string {
	return m.state.Tracks
}
