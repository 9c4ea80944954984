package playlist_test

import (
	"math/rand"
	"sort"
	"testing"

	"mixtape/internal/playlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() playlist.State {
	return playlist.New([]string{"a.mp3", "b.mp3", "c.mp3"})
}

func TestNewInitialState(t *testing.T) {
	s := newState()
	assert.Equal(t, 0, s.Focus)
	assert.Equal(t, playlist.NoPick, s.Picked)
	assert.False(t, s.Dragging())
}

func TestBrowseMoveDownAndUp(t *testing.T) {
	s := newState()

	s = playlist.Apply(s, playlist.MoveDown)
	assert.Equal(t, 1, s.Focus)
	assert.Equal(t, []string{"a.mp3", "b.mp3", "c.mp3"}, s.Tracks)

	s = playlist.Apply(s, playlist.MoveUp)
	assert.Equal(t, 0, s.Focus)
}

func TestBrowseMovementClampsAtBoundaries(t *testing.T) {
	s := newState()

	s = playlist.Apply(s, playlist.MoveUp)
	assert.Equal(t, 0, s.Focus, "no wraparound at the top")

	for i := 0; i < 10; i++ {
		s = playlist.Apply(s, playlist.MoveDown)
	}
	assert.Equal(t, 2, s.Focus, "no wraparound at the bottom")
}

func TestTogglePickEntersAndLeavesDragMode(t *testing.T) {
	s := newState()
	s = playlist.Apply(s, playlist.MoveDown)

	s = playlist.Apply(s, playlist.TogglePick)
	assert.True(t, s.Dragging())
	assert.Equal(t, 1, s.Picked)

	s = playlist.Apply(s, playlist.TogglePick)
	assert.False(t, s.Dragging())
	assert.Equal(t, 1, s.Focus, "track stays where it was put down")
}

func TestDragMovesTrack(t *testing.T) {
	s := newState()

	s = playlist.Apply(s, playlist.TogglePick)
	s = playlist.Apply(s, playlist.MoveDown)

	assert.Equal(t, []string{"b.mp3", "a.mp3", "c.mp3"}, s.Tracks)
	assert.Equal(t, 1, s.Picked)
	assert.Equal(t, s.Picked, s.Focus, "focus stays glued to the picked track")
}

func TestDragClampsAtBoundaries(t *testing.T) {
	s := newState()
	s = playlist.Apply(s, playlist.TogglePick)

	s = playlist.Apply(s, playlist.MoveUp)
	assert.Equal(t, []string{"a.mp3", "b.mp3", "c.mp3"}, s.Tracks)
	assert.Equal(t, 0, s.Picked)

	s = playlist.Apply(s, playlist.MoveDown)
	s = playlist.Apply(s, playlist.MoveDown)
	s = playlist.Apply(s, playlist.MoveDown)
	assert.Equal(t, []string{"b.mp3", "c.mp3", "a.mp3"}, s.Tracks)
	assert.Equal(t, 2, s.Picked)
}

func TestPickThenUnpickRestoresNothingMoved(t *testing.T) {
	s := newState()
	before := s

	s = playlist.Apply(s, playlist.TogglePick)
	s = playlist.Apply(s, playlist.TogglePick)

	assert.Equal(t, before.Tracks, s.Tracks)
	assert.Equal(t, before.Focus, s.Focus)
	assert.Equal(t, playlist.NoPick, s.Picked)
}

func TestReorderScenario(t *testing.T) {
	// [A,B,C] focus=0; pick, down, down, unpick -> [B,C,A]
	s := playlist.New([]string{"A", "B", "C"})

	for _, cmd := range []playlist.Command{
		playlist.TogglePick,
		playlist.MoveDown,
		playlist.MoveDown,
		playlist.TogglePick,
	} {
		s = playlist.Apply(s, cmd)
	}

	assert.Equal(t, []string{"B", "C", "A"}, s.Tracks)
}

func TestTerminalAndIgnoreCommandsDoNotMutate(t *testing.T) {
	s := newState()
	s = playlist.Apply(s, playlist.TogglePick)
	before := s

	for _, cmd := range []playlist.Command{playlist.Ignore, playlist.Combine, playlist.Quit} {
		after := playlist.Apply(s, cmd)
		assert.Equal(t, before, after)
	}
}

func TestApplyDoesNotAliasPreviousState(t *testing.T) {
	s := newState()
	s = playlist.Apply(s, playlist.TogglePick)

	next := playlist.Apply(s, playlist.MoveDown)

	assert.Equal(t, []string{"a.mp3", "b.mp3", "c.mp3"}, s.Tracks, "previous state unchanged")
	assert.Equal(t, []string{"b.mp3", "a.mp3", "c.mp3"}, next.Tracks)
}

func TestTracksRemainAPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	commands := []playlist.Command{
		playlist.MoveUp, playlist.MoveDown, playlist.TogglePick, playlist.Ignore,
	}

	initial := []string{"a", "b", "c", "d", "e"}
	s := playlist.New(initial)

	want := append([]string(nil), initial...)
	sort.Strings(want)

	for i := 0; i < 1000; i++ {
		s = playlist.Apply(s, commands[rng.Intn(len(commands))])

		require.Len(t, s.Tracks, len(initial))
		require.GreaterOrEqual(t, s.Focus, 0)
		require.Less(t, s.Focus, len(s.Tracks))
		if s.Dragging() {
			require.Equal(t, s.Focus, s.Picked)
		}

		got := append([]string(nil), s.Tracks...)
		sort.Strings(got)
		require.Equal(t, want, got, "reordering must never drop or duplicate a track")
	}
}
