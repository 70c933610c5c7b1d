package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme colors
var (
	LightGreen = color.RGBA{R: 92, G: 191, B: 138, A: 255}
	StopRed    = color.RGBA{R: 229, G: 57, B: 53, A: 255}
	DotGray    = color.RGBA{R: 158, G: 158, B: 158, A: 255}
)

// VillageTheme is the default theme with a light green accent and rounded
// corners around the carousel controls
type VillageTheme struct{}

// NewVillageTheme creates a new village theme
func NewVillageTheme() fyne.Theme {
	return &VillageTheme{}
}

// Color returns theme colors
func (t *VillageTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return LightGreen // Arrows, active page dot
	case theme.ColorNameError:
		return StopRed // Stop button while playing
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *VillageTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *VillageTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with rounder buttons
func (t *VillageTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 15 // Start/Stop button
	case theme.SizeNameSelectionRadius:
		return 8
	case theme.SizeNameInnerPadding:
		return 12 // Taller buttons for touch
	}

	return theme.DefaultTheme().Size(name)
}
