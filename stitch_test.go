package puzzler

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/bodgit/puzzler/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tileColor(t tile.Tile) color.NRGBA {
	return color.NRGBA{R: uint8(t.X * 60), G: uint8(t.Y * 60), B: 0x80, A: 0xff}
}

func writeTiles(t *testing.T, dir string, grid tile.Grid, size image.Point) {
	for _, tl := range grid.Tiles() {
		m := image.NewNRGBA(image.Rectangle{Max: size})
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				m.SetNRGBA(x, y, tileColor(tl))
			}
		}
		saveImage(t, filepath.Join(dir, tl.Name()), m)
	}
}

func TestStitch(t *testing.T) {
	dir := t.TempDir()
	grid := tile.Grid{Columns: 3, Rows: 2}
	writeTiles(t, dir, grid, image.Pt(4, 5))

	output := filepath.Join(dir, "westeros.png")
	bounds, err := New(nil, nil).Stitch(StitchConfig{
		Dir:    dir,
		Output: output,
		Grid:   grid,
	})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 10), bounds)

	m := loadImage(t, output)
	require.Equal(t, bounds, m.Bounds())
	for _, tl := range grid.Tiles() {
		for _, pt := range []image.Point{{0, 0}, {3, 4}} {
			x, y := tl.X*4+pt.X, tl.Y*5+pt.Y
			assert.Equal(t, tileColor(tl), color.NRGBAModel.Convert(m.At(x, y)))
		}
	}
}

func TestStitchColors(t *testing.T) {
	dir := t.TempDir()
	grid := tile.Grid{Columns: 4, Rows: 4}
	writeTiles(t, dir, grid, image.Pt(8, 8))

	output := filepath.Join(dir, "westeros.png")
	_, err := New(nil, nil).Stitch(StitchConfig{
		Dir:    dir,
		Output: output,
		Grid:   grid,
		Colors: 4,
	})
	require.NoError(t, err)

	m, ok := loadImage(t, output).(*image.Paletted)
	require.True(t, ok)
	assert.LessOrEqual(t, len(m.Palette), 4)

	_, err = New(nil, nil).Stitch(StitchConfig{Dir: dir, Output: output, Grid: grid, Colors: 300})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestStitchMismatch(t *testing.T) {
	dir := t.TempDir()
	grid := tile.Grid{Columns: 2, Rows: 1}
	writeTiles(t, dir, grid, image.Pt(4, 4))
	saveImage(t, filepath.Join(dir, tile.Tile{X: 1}.Name()), image.NewNRGBA(image.Rect(0, 0, 5, 4)))

	_, err := New(nil, nil).Stitch(StitchConfig{
		Dir:    dir,
		Output: filepath.Join(dir, "westeros.png"),
		Grid:   grid,
	})
	require.ErrorIs(t, err, ErrInput)
	assert.Contains(t, err.Error(), "y0x1.png")

	_, err = New(nil, nil).Stitch(StitchConfig{
		Dir:    t.TempDir(),
		Output: filepath.Join(dir, "westeros.png"),
		Grid:   grid,
	})
	assert.ErrorIs(t, err, ErrInput)
}
