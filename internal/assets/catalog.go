package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"fyne.io/fyne/v2"
)

// ErrNotFound is returned when no bundled asset matches a logical name.
var ErrNotFound = errors.New("asset not found")

//go:embed images/*.png sounds/* icon.png
var bundled embed.FS

// Asset locations and lookup order
const (
	ImageDir = "images"
	SoundDir = "sounds"
	ImageExt = ".png"
	IconFile = "icon.png"
	IconName = "village-noise.png"
)

// SoundExtensions lists the sound formats looked up, in order.
var SoundExtensions = []string{".mp3", ".wav", ".ogg", ".flac"}

// Sound is an opened sound file. The caller owns it and must Close it.
type Sound struct {
	Name string
	Ext  string
	io.ReadCloser
}

// Catalog resolves logical asset names to bundled files
type Catalog struct {
	fsys fs.FS
}

// NewCatalog creates a catalog over the assets compiled into the binary
func NewCatalog() *Catalog {
	return &Catalog{fsys: bundled}
}

// NewCatalogFS creates a catalog over an arbitrary filesystem laid out like
// the bundle (images/, sounds/, icon.png)
func NewCatalogFS(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

// Image returns the image resource for a logical name
func (c *Catalog) Image(name string) (fyne.Resource, error) {
	file := path.Join(ImageDir, name+ImageExt)
	data, err := fs.ReadFile(c.fsys, file)
	if err != nil {
		return nil, notFound("image", name, err)
	}
	return fyne.NewStaticResource(name+ImageExt, data), nil
}

// OpenSound opens the first bundled file for name in SoundExtensions order
func (c *Catalog) OpenSound(name string) (*Sound, error) {
	for _, ext := range SoundExtensions {
		f, err := c.fsys.Open(path.Join(SoundDir, name+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open sound %q: %w", name, err)
		}
		return &Sound{Name: name, Ext: ext, ReadCloser: f}, nil
	}
	return nil, fmt.Errorf("sound %q: %w", name, ErrNotFound)
}

// HasSound reports whether a sound exists for name
func (c *Catalog) HasSound(name string) bool {
	s, err := c.OpenSound(name)
	if err != nil {
		return false
	}
	s.Close()
	return true
}

// Icon returns the application icon, or nil if it is missing
func (c *Catalog) Icon() fyne.Resource {
	data, err := fs.ReadFile(c.fsys, IconFile)
	if err != nil {
		return nil
	}
	return fyne.NewStaticResource(IconName, data)
}

func notFound(kind, name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
	}
	return fmt.Errorf("read %s %q: %w", kind, name, err)
}
