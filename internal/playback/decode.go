package playback

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ytget/village-noise/internal/assets"
)

// ErrUnsupportedFormat is returned for sound files without a known decoder.
var ErrUnsupportedFormat = errors.New("unsupported sound format")

// ResampleQuality is the beep resampler quality used when a sound's rate
// differs from the speaker rate
const ResampleQuality = 4

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3":  mp3.Decode,
	".ogg":  vorbis.Decode,
	".wav":  func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(rc) },
	".flac": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(rc) },
}

// Decode turns an opened sound into a seekable stream. The returned stream
// owns the sound and closes it on Close. On error the sound is closed.
func Decode(sound *assets.Sound) (beep.StreamSeekCloser, beep.Format, error) {
	decode, ok := decoders[sound.Ext]
	if !ok {
		sound.Close()
		return nil, beep.Format{}, fmt.Errorf("%s%s: %w", sound.Name, sound.Ext, ErrUnsupportedFormat)
	}

	rc, err := seekable(sound.ReadCloser)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("read %s%s: %w", sound.Name, sound.Ext, err)
	}

	streamer, format, err := decode(rc)
	if err != nil {
		rc.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s%s: %w", sound.Name, sound.Ext, err)
	}
	return streamer, format, nil
}

// LoopStream repeats s forever, resampled to rate when needed
func LoopStream(s beep.StreamSeeker, format beep.Format, rate beep.SampleRate) (beep.Streamer, error) {
	loop, err := beep.Loop2(s)
	if err != nil {
		return nil, fmt.Errorf("loop: %w", err)
	}
	if format.SampleRate == rate {
		return loop, nil
	}
	return beep.Resample(ResampleQuality, format.SampleRate, rate, loop), nil
}

type bytesReadCloser struct {
	*bytes.Reader
}

func (bytesReadCloser) Close() error { return nil }

// seekable returns rc unchanged when it can seek, otherwise buffers it.
// Looping rewinds the decoder, which needs a seekable source.
func seekable(rc io.ReadCloser) (io.ReadCloser, error) {
	if _, ok := rc.(io.Seeker); ok {
		return rc, nil
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return bytesReadCloser{bytes.NewReader(data)}, nil
}
