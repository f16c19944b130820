package puzzler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bodgit/puzzler/tile"
)

const (
	defaultTileDir = "tiles"
	defaultFetches = 4
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// FetchConfig controls a tile download.
type FetchConfig struct {
	// Dir receives the tiles, "tiles" by default
	Dir string
	// BaseURL overrides tile.BaseURL
	BaseURL string
	// Grid overrides the full map grid
	Grid tile.Grid
	// Client sends the requests, http.DefaultClient by default
	Client Doer
	// Workers is the number of concurrent downloads
	Workers int
}

func (c FetchConfig) withDefaults() FetchConfig {
	if c.Dir == "" {
		c.Dir = defaultTileDir
	}
	if c.BaseURL == "" {
		c.BaseURL = tile.BaseURL
	}
	if c.Grid.Len() == 0 {
		c.Grid = tile.Default()
	}
	if c.Client == nil {
		c.Client = http.DefaultClient
	}
	if c.Workers < 1 {
		c.Workers = defaultFetches
	}
	return c
}

// Fetch downloads every tile of the grid into a directory. Nothing is
// retried, the first failure stops the download.
func (p *Puzzler) Fetch(ctx context.Context, cfg FetchConfig) error {
	cfg = cfg.withDefaults()

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}

	return run(ctx, cfg.Grid.Tiles(), cfg.Workers, func(t tile.Tile) error {
		if err := fetchTile(ctx, cfg.Client, cfg.BaseURL, t, cfg.Dir); err != nil {
			return err
		}
		p.logger.Printf("Fetched \"%s\"\n", t.Name())
		return nil
	})
}

func fetchTile(ctx context.Context, client Doer, base string, t tile.Tile, dir string) error {
	u, err := t.URL(base)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInput, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: %s", ErrInput, u, resp.Status)
	}

	f, err := os.Create(filepath.Join(dir, t.Name()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInput, u, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}

	return nil
}
