package mask

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Extension is appended to a piece name to form its mask filename
const Extension = ".png"

// ErrNotFound is returned when a mask image is missing from the store.
var ErrNotFound = errors.New("mask: not found")

// Store reads mask images from a directory laid out as
// <dir>/<orientation>/<name>.png. It never writes to the directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of the mask for the given piece.
func (s *Store) Path(o Orientation, name string) string {
	return filepath.Join(s.dir, o.String(), name+Extension)
}

// Load reads the mask for the given piece and returns its coverage.
func (s *Store) Load(o Orientation, name string) (*image.Alpha, error) {
	file := s.Path(o, name)

	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, file)
		}
		return nil, err
	}
	defer f.Close()

	m, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mask: %s: %w", file, err)
	}

	return Coverage(m), nil
}

type opaquer interface {
	Opaque() bool
}

func opaque(m image.Image) bool {
	if o, ok := m.(opaquer); ok {
		return o.Opaque()
	}
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// Coverage converts a mask image into an alpha mask anchored at (0, 0). A
// mask with any transparency is read by its alpha channel, a fully opaque
// mask by its luminance so that white marks the inside of the piece.
func Coverage(m image.Image) *image.Alpha {
	b := m.Bounds()
	a := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))

	byLuminance := opaque(m)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.At(x, y)
			var v uint8
			if byLuminance {
				v = color.GrayModel.Convert(c).(color.Gray).Y
			} else {
				_, _, _, alpha := c.RGBA()
				v = uint8(alpha >> 8)
			}
			a.SetAlpha(x-b.Min.X, y-b.Min.Y, color.Alpha{A: v})
		}
	}

	return a
}
