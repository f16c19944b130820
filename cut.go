package puzzler

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bodgit/puzzler/mask"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	defaultMaskDir = "mask"

	// DirLayout is the time layout used to name each results directory
	DirLayout = "02-January-2006_15-04-05.000000"
)

// Config controls a single cut. Only File is required.
type Config struct {
	// File is the picture to cut
	File string
	// MaskDir is the root of the mask images, "mask" by default
	MaskDir string
	// OutputDir is where the results directory is created, the current
	// directory by default
	OutputDir string
	// Tables overrides the built-in layouts
	Tables mask.Tables
	// Workers is the number of pieces cut concurrently, one per CPU by
	// default
	Workers int
	// Now names the results directory, time.Now by default
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.MaskDir == "" {
		c.MaskDir = defaultMaskDir
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Tables == nil {
		c.Tables = mask.Defaults()
	}
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Piece is a single written puzzle piece.
type Piece struct {
	Name   string
	Path   string
	Bounds image.Rectangle
}

// Result describes a completed cut.
type Result struct {
	Dir         string
	Source      string
	SourceSHA1  string
	Orientation mask.Orientation
	Canvas      image.Rectangle
	Pieces      []Piece
}

type region struct {
	index int
	mask.Region
}

type cutter struct {
	orientation mask.Orientation
	canvas      *image.NRGBA
	store       *mask.Store
	dir         string
	pieces      []Piece
}

// Cut fits the picture in cfg.File to the canvas for its orientation and
// writes one PNG per piece of the matching layout. It stops at the first
// failing piece; files already written are left in place.
func (p *Puzzler) Cut(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("%w: no picture given", ErrUsage)
	}
	cfg = cfg.withDefaults()

	src, sum, err := decodeSource(cfg.File)
	if err != nil {
		return nil, err
	}

	o := mask.Detect(src.Bounds())
	table, ok := cfg.Tables[o]
	if !ok {
		return nil, fmt.Errorf("%w: no %s layout", ErrMaskNotFound, o)
	}
	p.logger.Printf("Picture \"%s\" is %dx%d, using %s layout\n", cfg.File, src.Bounds().Dx(), src.Bounds().Dy(), o)

	canvas := fitCanvas(src, o.Canvas())

	dir, err := makeResultsDir(cfg.OutputDir, cfg.Now())
	if err != nil {
		return nil, err
	}
	p.logger.Printf("Writing pieces to \"%s\"\n", dir)

	regions := make([]region, 0, len(table))
	for i, r := range table.Regions() {
		regions = append(regions, region{index: i, Region: r})
	}

	c := &cutter{
		orientation: o,
		canvas:      canvas,
		store:       mask.NewStore(cfg.MaskDir),
		dir:         dir,
		pieces:      make([]Piece, len(regions)),
	}

	if err := run(ctx, regions, cfg.Workers, func(r region) error {
		if err := c.cut(r); err != nil {
			return err
		}
		p.logger.Printf("Wrote \"%s\"\n", c.pieces[r.index].Path)
		return nil
	}); err != nil {
		return nil, err
	}

	result := &Result{
		Dir:         dir,
		Source:      cfg.File,
		SourceSHA1:  sum,
		Orientation: o,
		Canvas:      canvas.Bounds(),
		Pieces:      c.pieces,
	}

	if p.catalog != nil {
		if err := p.catalog.Record(result); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutput, err)
		}
	}

	return result, nil
}

func decodeSource(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInput, err)
	}
	defer f.Close()

	h := sha1.New()
	r := io.TeeReader(f, h)
	m, err := imaging.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrInput, file, err)
	}
	// Hash whatever the decoder didn't need
	if _, err := io.Copy(ioutil.Discard, r); err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrInput, file, err)
	}

	return m, fmt.Sprintf("%X", h.Sum(nil)), nil
}

// fitCanvas scales m until it covers size and crops the overflow evenly from
// both sides.
func fitCanvas(m image.Image, size image.Point) *image.NRGBA {
	return imaging.Fill(m, size.X, size.Y, imaging.Center, imaging.Lanczos)
}

func makeResultsDir(parent string, t time.Time) (string, error) {
	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutput, err)
	}

	dir := filepath.Join(parent, t.Format(DirLayout))
	if err := os.Mkdir(dir, 0755); err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%w: %s", ErrDirectoryExists, dir)
		}
		return "", fmt.Errorf("%w: %v", ErrOutput, err)
	}

	return dir, nil
}

func (c *cutter) cut(r region) error {
	coverage, err := c.store.Load(c.orientation, r.Name)
	if err != nil {
		if errors.Is(err, mask.ErrNotFound) {
			return fmt.Errorf("%w: %s: %v", ErrMaskNotFound, r.Name, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrInput, r.Name, err)
	}

	rect := image.Rectangle{Min: r.Offset, Max: r.Offset.Add(coverage.Bounds().Size())}
	if rect.Empty() || !rect.In(c.canvas.Bounds()) {
		return fmt.Errorf("%w: %s: %v does not fit in %v", ErrMaskBounds, r.Name, rect, c.canvas.Bounds())
	}

	piece := composite(imaging.Crop(c.canvas, rect), coverage)

	file := pieceFile(c.dir, r.Name)
	if err := writePNG(file, piece, os.O_EXCL); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutput, r.Name, err)
	}

	c.pieces[r.index] = Piece{
		Name:   r.Name,
		Path:   file,
		Bounds: piece.Bounds(),
	}

	return nil
}

// composite copies m through the coverage mask onto a transparent image of
// the same size as the mask.
func composite(m image.Image, coverage *image.Alpha) *image.NRGBA {
	dst := image.NewNRGBA(coverage.Bounds())
	draw.DrawMask(dst, dst.Bounds(), m, m.Bounds().Min, coverage, coverage.Bounds().Min, draw.Src)
	return dst
}

func pieceFile(dir, name string) string {
	return filepath.Join(dir, name+".png")
}

func writePNG(file string, m image.Image, flag int) error {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|flag, 0644)
	if err != nil {
		return err
	}

	if err := imaging.Encode(f, m, imaging.PNG); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
