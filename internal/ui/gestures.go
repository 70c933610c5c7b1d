package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/village-noise/internal/model"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// DefaultSwipeThreshold is the minimum drag distance, in pixels, that counts as a swipe
const DefaultSwipeThreshold float32 = 50.0

// GestureHandler accumulates drag events and reports a swipe when the drag ends
type GestureHandler struct {
	onGesture func(GestureType)

	// Drag tracking
	dx, dy float32

	swipeThreshold float32
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
	}
}

// Dragged records movement of an in-progress drag
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	gh.dx += event.Dragged.DX
	gh.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag and fires the callback
func (gh *GestureHandler) DragEnd() {
	gesture := ClassifyDrag(gh.dx, gh.dy, gh.swipeThreshold)
	gh.dx, gh.dy = 0, 0

	if gesture != GestureNone {
		gh.triggerGesture(gesture)
	}
}

// ClassifyDrag returns the swipe for a total drag offset, or GestureNone when
// the drag is shorter than threshold along its dominant axis
func ClassifyDrag(dx, dy, threshold float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	// Determine primary direction
	if absDx >= absDy {
		if absDx < threshold {
			return GestureNone
		}
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}

	if absDy < threshold {
		return GestureNone
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SwipeDirection maps a horizontal swipe onto a carousel move. Dragging the
// content right reveals the previous page.
func SwipeDirection(gesture GestureType) (model.Direction, bool) {
	switch gesture {
	case GestureSwipeRight:
		return model.Previous, true
	case GestureSwipeLeft:
		return model.Next, true
	default:
		return 0, false
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
