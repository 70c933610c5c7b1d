package model

// PlaybackStatus is the user-visible state of the Start/Stop control
type PlaybackStatus string

const (
	// PlaybackStopped means no sound is loaded
	PlaybackStopped PlaybackStatus = "Stopped"

	// PlaybackPlaying means a sound is looping
	PlaybackPlaying PlaybackStatus = "Playing"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsActive returns true if a sound is playing
func (ps PlaybackStatus) IsActive() bool {
	return ps == PlaybackPlaying
}

// PageChangePolicy decides what playback does when the page changes while a
// sound is playing
type PageChangePolicy string

const (
	// PolicyContinue keeps the current sound looping
	PolicyContinue PageChangePolicy = "continue"

	// PolicyStop stops playback
	PolicyStop PageChangePolicy = "stop"

	// PolicyFollow restarts playback with the new page's sound
	PolicyFollow PageChangePolicy = "follow"
)

// IsValid reports whether p is a known policy
func (p PageChangePolicy) IsValid() bool {
	return p == PolicyContinue || p == PolicyStop || p == PolicyFollow
}
