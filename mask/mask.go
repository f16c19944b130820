/*
Package mask holds the fixed puzzle layouts and reads the mask images that
give each puzzle piece its shape.

A layout is chosen by the orientation of the source picture. Landscape
pictures are fitted to a 796 by 528 canvas and cut into six rows of eight
pieces, portrait pictures are fitted to a 528 by 796 canvas and cut into eight
rows of six pieces. Each piece is positioned on the canvas by the offset in
its layout and sized by its mask image, which lives on disk as
<dir>/<orientation>/<name>.png.
*/
package mask

import (
	"image"
	"sort"
)

const (
	canvasLong  = 796
	canvasShort = 528
)

// Orientation selects a layout and a canvas size.
type Orientation int

const (
	// Landscape is used for pictures wider than they are tall
	Landscape Orientation = iota
	// Portrait is used for everything else, including square pictures
	Portrait
)

// Detect returns the orientation of a picture with the given bounds.
func Detect(r image.Rectangle) Orientation {
	if r.Dx() > r.Dy() {
		return Landscape
	}
	return Portrait
}

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "unknown"
	}
}

// Canvas returns the width and height a picture is fitted to before it is cut.
func (o Orientation) Canvas() image.Point {
	if o == Landscape {
		return image.Pt(canvasLong, canvasShort)
	}
	return image.Pt(canvasShort, canvasLong)
}

// Region is a single named piece and its offset on the canvas.
type Region struct {
	Name   string
	Offset image.Point
}

// Table maps piece names to their offsets on the canvas.
type Table map[string]image.Point

// Regions returns the pieces in the table sorted by name.
func (t Table) Regions() []Region {
	regions := make([]Region, 0, len(t))
	for name, offset := range t {
		regions = append(regions, Region{Name: name, Offset: offset})
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Name < regions[j].Name })
	return regions
}

// Tables holds one Table per orientation.
type Tables map[Orientation]Table

// Defaults returns the built-in layouts.
func Defaults() Tables {
	return Tables{
		Landscape: landscape,
		Portrait:  portrait,
	}
}
