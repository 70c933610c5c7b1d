package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	}

	return btn
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}

// GetDeviceOrientation returns the current device orientation
func (m *MobileUI) GetDeviceOrientation() fyne.DeviceOrientation {
	return fyne.CurrentDevice().Orientation()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.GetDeviceOrientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CarouselImageSize returns the minimum edge of the carousel image. Desktop
// windows and portrait phones get the larger size; landscape phones are short.
func (m *MobileUI) CarouselImageSize() float32 {
	if m.IsMobileDevice() && m.IsLandscape() {
		return CarouselImageMin
	}
	return CarouselImageMinLarge
}
