package playback

import (
	"github.com/google/uuid"

	"github.com/ytget/village-noise/internal/model"
)

// State is either Stopped or Playing. Only Playing carries a handle, so at
// most one playback resource can be owned at a time.
type State interface {
	Status() model.PlaybackStatus
}

// Stopped means nothing is loaded.
type Stopped struct{}

// Status returns PlaybackStopped
func (Stopped) Status() model.PlaybackStatus { return model.PlaybackStopped }

// Playing means the sound of Page is looping.
type Playing struct {
	Page    int
	Sound   string
	Session uuid.UUID

	handle Handle
}

// Status returns PlaybackPlaying
func (Playing) Status() model.PlaybackStatus { return model.PlaybackPlaying }
