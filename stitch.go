package puzzler

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/bodgit/puzzler/tile"
	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

const (
	defaultStitchOutput = "westeros.png"
	maxColors           = 256
)

// StitchConfig controls how tiles are joined.
type StitchConfig struct {
	// Dir holds the tiles, "tiles" by default
	Dir string
	// Output is the PNG to write, "westeros.png" by default
	Output string
	// Grid overrides the full map grid
	Grid tile.Grid
	// Colors reduces the result to a palette of at most this many colors,
	// zero keeps full color
	Colors int
}

func (c StitchConfig) withDefaults() StitchConfig {
	if c.Dir == "" {
		c.Dir = defaultTileDir
	}
	if c.Output == "" {
		c.Output = defaultStitchOutput
	}
	if c.Grid.Len() == 0 {
		c.Grid = tile.Default()
	}
	return c
}

func readTile(dir string, t tile.Tile) (image.Image, error) {
	file := filepath.Join(dir, t.Name())

	m, err := imaging.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInput, file, err)
	}

	return m, nil
}

// Stitch pastes every tile of the grid into one picture, left to right and
// top to bottom, and returns its bounds. Every tile must be the same size.
func (p *Puzzler) Stitch(cfg StitchConfig) (image.Rectangle, error) {
	cfg = cfg.withDefaults()

	if cfg.Colors < 0 || cfg.Colors > maxColors {
		return image.Rectangle{}, fmt.Errorf("%w: colors must be between 0 and %d", ErrUsage, maxColors)
	}

	var canvas *image.NRGBA
	var size image.Point

	for _, t := range cfg.Grid.Tiles() {
		m, err := readTile(cfg.Dir, t)
		if err != nil {
			return image.Rectangle{}, err
		}

		if canvas == nil {
			size = m.Bounds().Size()
			canvas = image.NewNRGBA(image.Rect(0, 0, cfg.Grid.Columns*size.X, cfg.Grid.Rows*size.Y))
		} else if m.Bounds().Size() != size {
			return image.Rectangle{}, fmt.Errorf("%w: %s is %v, expected %v", ErrInput, t.Name(), m.Bounds().Size(), size)
		}

		pt := image.Pt(t.X*size.X, t.Y*size.Y)
		draw.Draw(canvas, image.Rectangle{Min: pt, Max: pt.Add(size)}, m, m.Bounds().Min, draw.Src)

		if t.X == cfg.Grid.Columns-1 {
			p.logger.Printf("Stitched row %d\n", t.Y)
		}
	}

	var out image.Image = canvas
	if cfg.Colors > 0 {
		b := canvas.Bounds()
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, cfg.Colors), canvas))
		draw.Draw(pm, b, canvas, b.Min, draw.Src)
		out = pm
	}

	if err := writePNG(cfg.Output, out, os.O_TRUNC); err != nil {
		return image.Rectangle{}, fmt.Errorf("%w: %v", ErrOutput, err)
	}
	p.logger.Printf("Wrote \"%s\"\n", cfg.Output)

	return canvas.Bounds(), nil
}
