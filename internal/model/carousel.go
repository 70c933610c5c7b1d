package model

// Carousel tracks which page of a PageSet is displayed.
type Carousel struct {
	pages *PageSet
	index Index
}

// NewCarousel creates a carousel positioned on the first page
func NewCarousel(pages *PageSet) *Carousel {
	return &Carousel{
		pages: pages,
		index: NewIndex(pages.Len()),
	}
}

// Pages returns the underlying page set
func (c *Carousel) Pages() *PageSet { return c.pages }

// Index returns the current page index
func (c *Carousel) Index() int { return c.index.Value() }

// Len returns the number of pages
func (c *Carousel) Len() int { return c.pages.Len() }

// Current returns the displayed page
func (c *Carousel) Current() Page {
	p, _ := c.pages.At(c.index.Value())
	return p
}

// CanMove reports whether the arrow for direction d should be shown
func (c *Carousel) CanMove(d Direction) bool {
	return c.index.CanMove(d)
}

// Swipe moves one page in direction d. Out-of-range moves are ignored and
// return false.
func (c *Carousel) Swipe(d Direction) bool {
	return c.index.Move(d)
}

// TapArrow behaves exactly like Swipe; it exists for the arrow controls.
func (c *Carousel) TapArrow(d Direction) bool {
	return c.index.Move(d)
}
