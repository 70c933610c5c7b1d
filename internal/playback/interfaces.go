package playback

import (
	"github.com/ytget/village-noise/internal/assets"
)

// Engine starts looping playback of a sound by logical name.
type Engine interface {
	// Loop acquires a playback resource for name, configures it to repeat
	// indefinitely and starts it
	Loop(name string) (Handle, error)
}

// Handle is an active looping playback resource.
type Handle interface {
	// Name returns the logical sound name
	Name() string

	// Stop halts playback, rewinds to the start and releases the resource
	Stop() error
}

// SoundSource opens bundled sounds by logical name.
type SoundSource interface {
	OpenSound(name string) (*assets.Sound, error)
}
