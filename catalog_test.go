package puzzler

import (
	"context"
	"image"
	"path/filepath"
	"testing"

	"github.com/bodgit/puzzler/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c, err := OpenCatalog(filepath.Join(t.TempDir(), "puzzler.db"))
	require.NoError(t, err)
	defer c.Close()

	runs, err := c.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)

	first := &Result{
		Dir:         "first",
		Source:      "westeros.png",
		SourceSHA1:  "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709",
		Orientation: mask.Landscape,
		Pieces: []Piece{
			{Name: "piece_01_01", Bounds: image.Rect(0, 0, 66, 87)},
			{Name: "piece_01_02", Bounds: image.Rect(0, 0, 131, 62)},
		},
	}
	require.NoError(t, c.Record(first))

	second := &Result{
		Dir:         "second",
		Source:      "portrait.jpg",
		SourceSHA1:  "0000000000000000000000000000000000000000",
		Orientation: mask.Portrait,
	}
	require.NoError(t, c.Record(second))

	// Directories are unique, a failed record leaves nothing behind
	assert.Error(t, c.Record(first))

	runs, err = c.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "second", runs[0].Dir)
	assert.Equal(t, "portrait", runs[0].Orientation)
	assert.Equal(t, 0, runs[0].Pieces)
	assert.Equal(t, "first", runs[1].Dir)
	assert.Equal(t, "westeros.png", runs[1].Source)
	assert.Equal(t, first.SourceSHA1, runs[1].SourceSHA1)
	assert.Equal(t, "landscape", runs[1].Orientation)
	assert.Equal(t, 2, runs[1].Pieces)

	pieces, err := c.Pieces("first")
	require.NoError(t, err)
	assert.Equal(t, []Piece{
		{Name: "piece_01_01", Path: filepath.Join("first", "piece_01_01.png"), Bounds: image.Rect(0, 0, 66, 87)},
		{Name: "piece_01_02", Path: filepath.Join("first", "piece_01_02.png"), Bounds: image.Rect(0, 0, 131, 62)},
	}, pieces)
}

func TestCutRecorded(t *testing.T) {
	c, err := OpenCatalog(filepath.Join(t.TempDir(), "puzzler.db"))
	require.NoError(t, err)
	defer c.Close()

	f := newFixture(t)
	f.mask(t, mask.Landscape, "piece_01_01", ellipse(66, 87))

	result, err := New(c, nil).Cut(context.Background(), f.config(f.source(t, 1000, 800), mask.Tables{
		mask.Landscape: {"piece_01_01": image.Pt(0, 0)},
	}))
	require.NoError(t, err)

	runs, err := c.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, result.Dir, runs[0].Dir)
	assert.Equal(t, result.SourceSHA1, runs[0].SourceSHA1)
	assert.Equal(t, 1, runs[0].Pieces)

	pieces, err := c.Pieces(result.Dir)
	require.NoError(t, err)
	assert.Equal(t, result.Pieces, pieces)
}
