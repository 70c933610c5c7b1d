package model

import (
	"errors"
	"fmt"
)

// ErrNoPages is returned when a page set is built without any pages.
var ErrNoPages = errors.New("page set must contain at least one page")

// Page pairs one image with one loopable sound, both by logical name.
type Page struct {
	Image string
	Sound string
}

// DefaultImageNames and DefaultSoundNames are the bundled assets, paired by index.
var (
	DefaultImageNames = []string{"drink1", "drink2", "drink3", "drink4", "drink5", "drink6"}
	DefaultSoundNames = []string{"sound1", "sound2", "sound3", "sound4", "sound5", "sound6"}
)

// PageSet is an ordered, fixed-length list of pages. It never changes after
// construction.
type PageSet struct {
	pages []Page
}

// NewPageSet creates a page set from the given pages
func NewPageSet(pages ...Page) (*PageSet, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	for i, p := range pages {
		if p.Image == "" || p.Sound == "" {
			return nil, fmt.Errorf("page %d: image and sound names are required", i)
		}
	}

	cp := make([]Page, len(pages))
	copy(cp, pages)
	return &PageSet{pages: cp}, nil
}

// PairPages zips image and sound names positionally into pages
func PairPages(images, sounds []string) ([]Page, error) {
	if len(images) != len(sounds) {
		return nil, fmt.Errorf("mismatched asset lists: %d images, %d sounds", len(images), len(sounds))
	}
	pages := make([]Page, len(images))
	for i := range images {
		pages[i] = Page{Image: images[i], Sound: sounds[i]}
	}
	return pages, nil
}

// DefaultPageSet returns the six bundled pages
func DefaultPageSet() *PageSet {
	pages, err := PairPages(DefaultImageNames, DefaultSoundNames)
	if err != nil {
		panic(err)
	}
	ps, err := NewPageSet(pages...)
	if err != nil {
		panic(err)
	}
	return ps
}

// Len returns the number of pages
func (ps *PageSet) Len() int {
	return len(ps.pages)
}

// At returns the page at index i, or false when i is out of range
func (ps *PageSet) At(i int) (Page, bool) {
	if i < 0 || i >= len(ps.pages) {
		return Page{}, false
	}
	return ps.pages[i], true
}

// Pages returns a copy of all pages in order
func (ps *PageSet) Pages() []Page {
	cp := make([]Page, len(ps.pages))
	copy(cp, ps.pages)
	return cp
}
