package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ImageSource resolves page images by logical name
type ImageSource interface {
	Image(name string) (fyne.Resource, error)
}

// LoadPageImage loads a page image, falling back to the broken image icon
func LoadPageImage(images ImageSource, name string) fyne.Resource {
	res, err := images.Image(name)
	if err != nil {
		log.Printf("Error loading image %s: %v", name, err)
		return theme.BrokenImageIcon()
	}
	return res
}
