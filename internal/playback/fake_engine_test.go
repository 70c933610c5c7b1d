package playback

import (
	"fmt"

	"github.com/ytget/village-noise/internal/assets"
)

// fakeEngine records acquired handles without touching an audio device.
type fakeEngine struct {
	known   map[string]bool
	loopErr error
	handles []*fakeHandle
}

func newFakeEngine(names ...string) *fakeEngine {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	return &fakeEngine{known: known}
}

func (e *fakeEngine) Loop(name string) (Handle, error) {
	if !e.known[name] {
		return nil, fmt.Errorf("sound %q: %w", name, assets.ErrNotFound)
	}
	if e.loopErr != nil {
		return nil, e.loopErr
	}
	h := &fakeHandle{name: name, playing: true}
	e.handles = append(e.handles, h)
	return h, nil
}

// active returns handles that are still playing
func (e *fakeEngine) active() []*fakeHandle {
	var out []*fakeHandle
	for _, h := range e.handles {
		if h.playing {
			out = append(out, h)
		}
	}
	return out
}

type fakeHandle struct {
	name    string
	playing bool
	rewound bool
	stops   int
	stopErr error
}

func (h *fakeHandle) Name() string { return h.name }

func (h *fakeHandle) Stop() error {
	h.stops++
	h.playing = false
	h.rewound = true
	return h.stopErr
}
