package playback

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Speaker output configuration
const (
	DefaultSampleRate beep.SampleRate = 44100
	SpeakerBuffer                     = time.Second / 10
)

// SpeakerEngine plays sounds through the system audio device.
type SpeakerEngine struct {
	source SoundSource
	rate   beep.SampleRate

	// openDevice is speaker.Init outside of tests
	openDevice func(beep.SampleRate, int) error
	ready      bool
}

// NewSpeakerEngine creates an engine reading sounds from source.
// The audio device is opened on the first Loop call.
func NewSpeakerEngine(source SoundSource) *SpeakerEngine {
	return &SpeakerEngine{
		source:     source,
		rate:       DefaultSampleRate,
		openDevice: speaker.Init,
	}
}

// Loop decodes name, wraps it in an endless loop and hands it to the speaker
func (e *SpeakerEngine) Loop(name string) (Handle, error) {
	sound, err := e.source.OpenSound(name)
	if err != nil {
		return nil, err
	}

	stream, format, err := Decode(sound)
	if err != nil {
		return nil, err
	}

	loop, err := LoopStream(stream, format, e.rate)
	if err != nil {
		stream.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if err := e.init(); err != nil {
		stream.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	ctrl := &beep.Ctrl{Streamer: loop}
	speaker.Play(ctrl)

	return &speakerHandle{name: name, ctrl: ctrl, stream: stream}, nil
}

// Close releases the audio device
func (e *SpeakerEngine) Close() {
	if e.ready {
		speaker.Clear()
		speaker.Close()
		e.ready = false
	}
}

// init opens the audio device. A failed open is retried on the next call.
func (e *SpeakerEngine) init() error {
	if e.ready {
		return nil
	}
	if err := e.openDevice(e.rate, e.rate.N(SpeakerBuffer)); err != nil {
		return err
	}
	e.ready = true
	return nil
}

type speakerHandle struct {
	name   string
	ctrl   *beep.Ctrl
	stream beep.StreamSeekCloser
}

func (h *speakerHandle) Name() string { return h.name }

func (h *speakerHandle) Stop() error {
	// A Ctrl without a streamer is drained and dropped by the speaker.
	speaker.Lock()
	h.ctrl.Paused = true
	h.ctrl.Streamer = nil
	speaker.Unlock()

	err := h.stream.Seek(0)
	if cerr := h.stream.Close(); err == nil {
		err = cerr
	}
	return err
}
