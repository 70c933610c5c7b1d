package playback

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ytget/village-noise/internal/assets"
	"github.com/ytget/village-noise/internal/model"
)

// ErrUnknownPage is returned when Start is called with an index outside the page set.
var ErrUnknownPage = errors.New("unknown page")

// Controller owns the single playback resource and the Stopped/Playing state.
// It is driven from the UI goroutine and is not safe for concurrent use.
type Controller struct {
	pages    *model.PageSet
	engine   Engine
	policy   model.PageChangePolicy
	state    State
	onChange func(State)
}

// NewController creates a stopped controller for the given pages
func NewController(pages *model.PageSet, engine Engine) *Controller {
	return &Controller{
		pages:  pages,
		engine: engine,
		policy: model.PolicyContinue,
		state:  Stopped{},
	}
}

// OnChange sets the callback invoked after every state transition
func (c *Controller) OnChange(callback func(State)) {
	c.onChange = callback
}

// SetPageChangePolicy configures what PageChanged does while playing.
// Unknown policies fall back to PolicyContinue.
func (c *Controller) SetPageChangePolicy(policy model.PageChangePolicy) {
	if !policy.IsValid() {
		policy = model.PolicyContinue
	}
	c.policy = policy
}

// PageChangePolicy returns the active policy
func (c *Controller) PageChangePolicy() model.PageChangePolicy {
	return c.policy
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// IsPlaying reports whether a sound is looping
func (c *Controller) IsPlaying() bool {
	_, ok := c.state.(Playing)
	return ok
}

// Start loops the sound of page index. A sound that is already playing is
// stopped first. On failure the controller is left Stopped and the error is
// returned; a missing asset wraps assets.ErrNotFound.
func (c *Controller) Start(index int) error {
	page, ok := c.pages.At(index)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPage, index)
	}

	c.release()

	handle, err := c.engine.Loop(page.Sound)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			log.Printf("Sound file not found for page %d: %v", index, err)
		} else {
			log.Printf("Error initializing audio player for %s: %v", page.Sound, err)
		}
		c.setState(Stopped{})
		return fmt.Errorf("start page %d: %w", index, err)
	}

	playing := Playing{
		Page:    index,
		Sound:   page.Sound,
		Session: uuid.New(),
		handle:  handle,
	}
	log.Printf("Playback started: session=%s page=%d sound=%s", playing.Session, index, page.Sound)
	c.setState(playing)
	return nil
}

// Stop halts and releases the active sound. It does nothing when stopped.
func (c *Controller) Stop() {
	if !c.IsPlaying() {
		return
	}
	c.release()
	c.setState(Stopped{})
}

// Toggle stops playback when playing and starts page index otherwise
func (c *Controller) Toggle(index int) error {
	if c.IsPlaying() {
		c.Stop()
		return nil
	}
	return c.Start(index)
}

// PageChanged applies the page-change policy after the carousel moved to index
func (c *Controller) PageChanged(index int) error {
	playing, ok := c.state.(Playing)
	if !ok {
		return nil
	}

	switch c.policy {
	case model.PolicyStop:
		c.Stop()
	case model.PolicyFollow:
		if playing.Page != index {
			return c.Start(index)
		}
	}
	return nil
}

// Close stops playback; call it when the window goes away
func (c *Controller) Close() {
	c.Stop()
}

// release stops the owned handle, if any, without notifying observers
func (c *Controller) release() {
	playing, ok := c.state.(Playing)
	if !ok {
		return
	}
	c.state = Stopped{}

	if err := playing.handle.Stop(); err != nil {
		log.Printf("Error stopping sound %s (session %s): %v", playing.Sound, playing.Session, err)
		return
	}
	log.Printf("Playback stopped: session=%s sound=%s", playing.Session, playing.Sound)
}

func (c *Controller) setState(state State) {
	c.state = state
	if c.onChange != nil {
		c.onChange(state)
	}
}
