// Package playlist holds the ordered-track editor state machine.
//
// The state is a plain value: applying a command returns the next
// state and never aliases the previous one, so the editor logic is
// unit-testable without a terminal attached. The TUI layer owns the
// mapping from key events to Commands.
package playlist

// Command is a discrete editor action decoded from user input.
type Command int

const (
	// Ignore is any input the editor does not recognize; a no-op.
	Ignore Command = iota
	// MoveUp moves the focus up, or drags the picked track up.
	MoveUp
	// MoveDown moves the focus down, or drags the picked track down.
	MoveDown
	// TogglePick picks up the focused track, or puts it back down.
	TogglePick
	// Combine ends the session and combines tracks in the current order.
	Combine
	// Quit ends the session without combining.
	Quit
)

// NoPick marks the absence of a picked-up track.
const NoPick = -1

// State is one snapshot of the editor: the track order, the focus
// cursor, and the optionally picked-up index. While a track is picked
// up, Focus stays glued to it as it moves.
type State struct {
	Tracks []string
	Focus  int
	Picked int
}

// New returns the initial state over the given tracks: focus on the
// first entry, nothing picked up. The caller guarantees tracks is
// non-empty; an editor session over zero tracks never starts.
func New(tracks []string) State {
	return State{
		Tracks: tracks,
		Focus:  0,
		Picked: NoPick,
	}
}

// Dragging reports whether a track is currently picked up.
func (s State) Dragging() bool {
	return s.Picked != NoPick
}

// Apply returns the state after cmd. Movement clamps at the list
// boundaries, reordering swaps adjacent entries only, and the track
// multiset is never changed. Terminal commands (Combine, Quit) and
// Ignore leave the state untouched.
func Apply(s State, cmd Command) State {
	switch cmd {
	case MoveUp:
		if s.Dragging() {
			return dragTo(s, s.Picked-1)
		}
		if s.Focus > 0 {
			s.Focus--
		}
		return s
	case MoveDown:
		if s.Dragging() {
			return dragTo(s, s.Picked+1)
		}
		if s.Focus < len(s.Tracks)-1 {
			s.Focus++
		}
		return s
	case TogglePick:
		if s.Dragging() {
			// Put the track down where it is; this is not an undo.
			s.Picked = NoPick
		} else {
			s.Picked = s.Focus
		}
		return s
	default:
		return s
	}
}

// dragTo swaps the picked track with the entry at dest and moves both
// the pick and the focus along with it. Out-of-range destinations are
// a no-op, not a wraparound.
func dragTo(s State, dest int) State {
	if dest < 0 || dest >= len(s.Tracks) {
		return s
	}

	next := make([]string, len(s.Tracks))
	copy(next, s.Tracks)
	next[s.Picked], next[dest] = next[dest], next[s.Picked]

	s.Tracks = next
	s.Picked = dest
	s.Focus = dest
	return s
}
