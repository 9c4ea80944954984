package audio

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"mixtape/internal/errors"
	"mixtape/internal/log"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// resampleQuality trades speed for accuracy; 4 is beep's documented
// good default.
const resampleQuality = 4

// baseFormat is used for generated silence and as the fallback output
// format. Decoded tracks keep their native format; Concat resamples to
// the left operand's rate.
var baseFormat = beep.Format{
	SampleRate:  beep.SampleRate(44100),
	NumChannels: 2,
	Precision:   2,
}

// segment is the beep-backed Segment implementation.
type segment struct {
	buf *beep.Buffer
}

func (s *segment) Duration() time.Duration {
	return s.buf.Format().SampleRate.D(s.buf.Len())
}

// BeepCodec implements Codec on top of the beep streamer library,
// shelling out to ffmpeg for compressed output formats.
type BeepCodec struct{}

// NewBeepCodec returns the production codec.
func NewBeepCodec() *BeepCodec {
	return &BeepCodec{}
}

// Decode loads the file at path fully into memory. The decoder is
// chosen by file extension; unsupported extensions fail with a
// DecodeFailed error.
func (c *BeepCodec) Decode(path string) (Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewCombineError("could not open", filepath.Base(path), errors.DecodeFailed, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, errors.NewCombineError("unsupported audio format", filepath.Base(path), errors.DecodeFailed, nil)
	}
	if err != nil {
		f.Close()
		return nil, errors.NewCombineError("could not decode", filepath.Base(path), errors.DecodeFailed, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)

	if streamer.Err() != nil {
		return nil, errors.NewCombineError("could not decode", filepath.Base(path), errors.DecodeFailed, streamer.Err())
	}
	return &segment{buf: buf}, nil
}

// Silence produces d worth of silent samples at the base format.
func (c *BeepCodec) Silence(d time.Duration) Segment {
	buf := beep.NewBuffer(baseFormat)
	buf.Append(beep.Silence(baseFormat.SampleRate.N(d)))
	return &segment{buf: buf}
}

// Concat appends b after a. The result keeps a's format; b is
// resampled when its sample rate differs.
func (c *BeepCodec) Concat(a, b Segment) Segment {
	left := a.(*segment)
	right := b.(*segment)

	out := beep.NewBuffer(left.buf.Format())
	out.Append(left.buf.Streamer(0, left.buf.Len()))

	var rs beep.Streamer = right.buf.Streamer(0, right.buf.Len())
	if right.buf.Format().SampleRate != left.buf.Format().SampleRate {
		rs = beep.Resample(resampleQuality, right.buf.Format().SampleRate, left.buf.Format().SampleRate, rs)
	}
	out.Append(rs)

	return &segment{buf: out}
}

// Encode writes seg to path. Wav is written directly; every other
// format goes through ffmpeg from a temporary wav file.
func (c *BeepCodec) Encode(seg Segment, path string, opts EncodeOptions) error {
	s := seg.(*segment)

	if strings.EqualFold(opts.Format, "wav") {
		return c.writeWav(s, path)
	}

	tmp, err := os.CreateTemp("", "mixtape-*.wav")
	if err != nil {
		return errors.NewCombineError("could not create temporary file", "", errors.EncodeFailed, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.writeWav(s, tmpPath); err != nil {
		return err
	}
	return transcode(tmpPath, path, opts)
}

func (c *BeepCodec) writeWav(s *segment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewCombineError("could not write output file", path, errors.EncodeFailed, err)
	}

	if err := wav.Encode(f, s.buf.Streamer(0, s.buf.Len()), s.buf.Format()); err != nil {
		f.Close()
		return errors.NewCombineError("could not encode output", path, errors.EncodeFailed, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewCombineError("could not write output file", path, errors.EncodeFailed, err)
	}
	return nil
}

// transcode converts the intermediate wav into the requested format.
func transcode(src, dst string, opts EncodeOptions) error {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return errors.NewCombineError("ffmpeg is required for "+opts.Format+" output", "", errors.EncodeFailed, err)
	}

	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", src}
	if opts.Bitrate != "" {
		args = append(args, "-b:a", opts.Bitrate)
	}
	args = append(args, "-f", opts.Format, dst)

	log.Debug("running %s %s", ffmpeg, strings.Join(args, " "))
	out, err := exec.Command(ffmpeg, args...).CombinedOutput()
	if err != nil {
		return errors.NewCombineError("could not write output file: "+strings.TrimSpace(string(out)), dst, errors.EncodeFailed, err)
	}
	return nil
}
