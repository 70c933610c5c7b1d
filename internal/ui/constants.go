package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Carousel sizing and behavior
const (
	CarouselImageMin      float32 = 240
	CarouselImageMinLarge float32 = 320
	CarouselTransition            = 300 * time.Millisecond

	DotSize    float32 = 8
	DotSpacing float32 = 6
)

// Layout sizing
const (
	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
	MobileButtonWidth  float32 = 160
)

// Text fragments
const (
	NotificationSeparator = ": "
)
