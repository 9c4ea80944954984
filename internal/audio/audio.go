// Package audio is the codec boundary: decoding input tracks,
// generating silence, concatenating segments, and encoding the result.
// The rest of the application only depends on the Codec interface.
package audio

import "time"

// Segment is an in-memory decoded piece of audio with a duration,
// produced by Decode or Silence and combinable via Concat.
type Segment interface {
	Duration() time.Duration
}

// EncodeOptions selects the output container and bitrate.
type EncodeOptions struct {
	Format  string // "mp3", "wav", or any ffmpeg muxer name
	Bitrate string // e.g. "320k"; ignored for wav output
}

// Codec is the external audio capability mixtape depends on but does
// not implement.
type Codec interface {
	// Decode loads an audio file into a Segment.
	Decode(path string) (Segment, error)
	// Silence produces a silent Segment of the given duration.
	Silence(d time.Duration) Segment
	// Concat appends b after a, resampling b if needed.
	Concat(a, b Segment) Segment
	// Encode writes seg to path in the requested format.
	Encode(seg Segment, path string, opts EncodeOptions) error
}
