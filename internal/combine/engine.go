// Package combine runs the final sequential pass: decode each track in
// the user's order, interleave silence between the tracks that decoded,
// and encode the result.
package combine

import (
	"path/filepath"
	"time"

	"mixtape/internal/audio"
	"mixtape/internal/config"
	"mixtape/internal/errors"
	"mixtape/internal/log"
)

// EventKind tags a progress event.
type EventKind int

// Progress event kinds, emitted in track order.
const (
	TrackStarted EventKind = iota
	TrackSkipped
	GapInserted
	Encoding
)

// Event reports combine progress to the caller.
type Event struct {
	Kind  EventKind
	Track string        // set for TrackStarted and TrackSkipped
	Err   error         // set for TrackSkipped
	Gap   time.Duration // set for GapInserted
}

// Summary describes a finished combine run.
type Summary struct {
	Combined int
	Skipped  []string
	Gaps     int
	Duration time.Duration
	Output   string
}

// Engine combines tracks through an audio.Codec.
type Engine struct {
	codec    audio.Codec
	silence  time.Duration
	opts     audio.EncodeOptions
	progress func(Event)
}

// New creates an engine from the combine section of cfg.
func New(codec audio.Codec, cfg *config.Config) *Engine {
	return &Engine{
		codec:   codec,
		silence: time.Duration(cfg.Combine.SilenceMs) * time.Millisecond,
		opts: audio.EncodeOptions{
			Format:  cfg.Combine.Format,
			Bitrate: cfg.Combine.Bitrate,
		},
	}
}

// SetProgress installs a progress callback. Events are delivered
// synchronously from Combine's goroutine.
func (e *Engine) SetProgress(fn func(Event)) {
	e.progress = fn
}

// Combine decodes tracks from inputDir in the given order and encodes
// the concatenation to outputPath. Tracks that fail to decode are
// skipped with a warning; silence gaps are inserted only between two
// tracks that both decoded, so a skipped track never leaves an orphan
// gap. Fails with a NoValidInput error when nothing decoded, and with
// an EncodeFailed error when the output cannot be written.
func (e *Engine) Combine(tracks []string, inputDir, outputPath string) (*Summary, error) {
	summary := &Summary{Output: outputPath}

	var combined audio.Segment
	for _, name := range tracks {
		e.emit(Event{Kind: TrackStarted, Track: name})

		seg, err := e.codec.Decode(filepath.Join(inputDir, name))
		if err != nil {
			log.Warn("could not process %q, skipping: %v", name, err)
			summary.Skipped = append(summary.Skipped, name)
			e.emit(Event{Kind: TrackSkipped, Track: name, Err: err})
			continue
		}

		if combined == nil {
			combined = seg
		} else {
			combined = e.codec.Concat(combined, e.codec.Silence(e.silence))
			summary.Gaps++
			e.emit(Event{Kind: GapInserted, Gap: e.silence})
			combined = e.codec.Concat(combined, seg)
		}
		summary.Combined++
	}

	if combined == nil {
		return nil, errors.NewCombineError("no valid audio files could be processed", "", errors.NoValidInput, nil)
	}

	e.emit(Event{Kind: Encoding})
	if err := e.codec.Encode(combined, outputPath, e.opts); err != nil {
		return nil, err
	}

	summary.Duration = combined.Duration()
	log.Debug("combined %d tracks (%d skipped, %d gaps) into %s",
		summary.Combined, len(summary.Skipped), summary.Gaps, outputPath)
	return summary, nil
}

func (e *Engine) emit(ev Event) {
	if e.progress != nil {
		e.progress(ev)
	}
}
