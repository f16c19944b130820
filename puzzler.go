/*
Package puzzler cuts a picture into jigsaw puzzle pieces.

The picture is fitted to a fixed canvas chosen by its orientation and then cut
into the pieces described by the matching layout in package mask. Every piece
is written as its own transparent PNG into a freshly created, timestamped
results directory.

The package can also download the tiles of the HBO Game of Thrones map and
stitch them into a single picture suitable for cutting.
*/
package puzzler

import (
	"errors"
	"io/ioutil"
	"log"
)

var (
	// ErrUsage is returned when a required option is missing or invalid
	ErrUsage = errors.New("puzzler: invalid usage")
	// ErrInput is returned when an image cannot be read or decoded
	ErrInput = errors.New("puzzler: cannot read input")
	// ErrMaskNotFound is returned when an expected mask image is missing
	ErrMaskNotFound = errors.New("puzzler: mask not found")
	// ErrMaskBounds is returned when a piece does not fit on the canvas
	ErrMaskBounds = errors.New("puzzler: mask outside canvas")
	// ErrOutput is returned when a directory or file cannot be written
	ErrOutput = errors.New("puzzler: cannot write output")
	// ErrDirectoryExists is returned when the results directory is taken
	ErrDirectoryExists = errors.New("puzzler: results directory exists")
)

// Puzzler cuts pictures and manages map tiles. Successful cuts are recorded
// in the catalog if one is set.
type Puzzler struct {
	catalog *Catalog
	logger  *log.Logger
}

// New returns a Puzzler. Both catalog and logger may be nil.
func New(catalog *Catalog, logger *log.Logger) *Puzzler {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Puzzler{
		catalog: catalog,
		logger:  logger,
	}
}
