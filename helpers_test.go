package puzzler

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func saveImage(t *testing.T, file string, m image.Image) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0755))
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func loadImage(t *testing.T, file string) image.Image {
	t.Helper()

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	return m
}

func gradient(width, height int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) % 256),
				A: 0xff,
			})
		}
	}
	return m
}

// ellipse returns a white ellipse filling a black width by height mask.
func ellipse(width, height int) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, width, height))
	cx, cy := float64(width)/2, float64(height)/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) + 0.5 - cx) / cx
			dy := (float64(y) + 0.5 - cy) / cy
			if dx*dx+dy*dy <= 1 {
				m.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return m
}
