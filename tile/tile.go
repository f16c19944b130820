/*
Package tile describes the grid of map tiles served by the HBO viewer's guide.

The map is published at zoom level 8 as 26 rows of 39 PNG tiles, each named
after its row and column, for example y0x0.png for the top left tile and
y25x38.png for the bottom right one.
*/
package tile

import (
	"fmt"
	"net/url"
)

const (
	// BaseURL is where the tiles are published
	BaseURL = "http://viewers-guide.hbo.com/mapimages/8/"

	maxX = 38
	maxY = 25
)

// Tile identifies a single tile by its column and row.
type Tile struct {
	X, Y int
}

// Name returns the filename of the tile, both locally and remotely.
func (t Tile) Name() string {
	return fmt.Sprintf("y%dx%d.png", t.Y, t.X)
}

// URL returns the location of the tile below base.
func (t Tile) URL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return u.ResolveReference(&url.URL{Path: t.Name()}).String(), nil
}

// Grid is a rectangular set of tiles.
type Grid struct {
	Columns, Rows int
}

// Default returns the full map grid.
func Default() Grid {
	return Grid{
		Columns: maxX + 1,
		Rows:    maxY + 1,
	}
}

// Len returns the number of tiles in the grid.
func (g Grid) Len() int {
	return g.Columns * g.Rows
}

// Tiles returns every tile in the grid, row by row.
func (g Grid) Tiles() []Tile {
	tiles := make([]Tile, 0, g.Len())
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Columns; x++ {
			tiles = append(tiles, Tile{X: x, Y: y})
		}
	}
	return tiles
}
