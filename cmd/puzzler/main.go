package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bodgit/puzzler"
	"github.com/urfave/cli/v2"
	"github.com/yyyoichi/httpcache-go"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newPuzzler(c *cli.Context) (*puzzler.Puzzler, func() error, error) {
	if c.String("db") == "" {
		return puzzler.New(nil, newLogger(c)), func() error { return nil }, nil
	}

	catalog, err := puzzler.OpenCatalog(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return puzzler.New(catalog, newLogger(c)), catalog.Close, nil
}

func exitError(c *cli.Context, err error) error {
	if errors.Is(err, puzzler.ErrUsage) {
		fmt.Fprintln(os.Stderr, err)
		cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
	}
	return cli.NewExitError(err, 1)
}

func main() {
	app := cli.NewApp()

	app.Name = "puzzler"
	app.Usage = "Jigsaw puzzle cutter and map tile utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PUZZLER_DB"},
			Usage:   "record cuts in this database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "cut",
			Usage: "Cut a picture into puzzle pieces",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Usage:    "path to the picture file",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "mask",
					EnvVars: []string{"PUZZLER_MASK"},
					Value:   "mask",
					Usage:   "directory holding the mask images",
				},
				&cli.StringFlag{
					Name:  "output",
					Value: ".",
					Usage: "directory to create the results directory in",
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "number of pieces cut concurrently (default: one per CPU)",
				},
			},
			Action: func(c *cli.Context) error {
				p, closeFunc, err := newPuzzler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closeFunc()

				file, err := filepath.Abs(c.String("file"))
				if err != nil {
					return exitError(c, err)
				}

				result, err := p.Cut(context.Background(), puzzler.Config{
					File:      file,
					MaskDir:   c.String("mask"),
					OutputDir: c.String("output"),
					Workers:   c.Int("workers"),
				})
				if err != nil {
					return exitError(c, err)
				}

				fmt.Fprintln(c.App.Writer, result.Dir)

				return nil
			},
		},
		{
			Name:  "fetch",
			Usage: "Download the map tiles",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dir",
					Value: "tiles",
					Usage: "directory to download the tiles to",
				},
				&cli.StringFlag{
					Name:    "cache",
					EnvVars: []string{"PUZZLER_CACHE"},
					Usage:   "cache responses in this directory",
				},
				&cli.IntFlag{
					Name:  "workers",
					Value: 4,
					Usage: "number of concurrent downloads",
				},
			},
			Action: func(c *cli.Context) error {
				p, closeFunc, err := newPuzzler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closeFunc()

				var client puzzler.Doer = &http.Client{Timeout: time.Minute}
				if dir := c.String("cache"); dir != "" {
					client = &httpcache.Client{
						Client:  client,
						Cache:   httpcache.NewStorageCache(dir),
						Handler: httpcache.NewDefaultHandler(),
					}
				}

				if err := p.Fetch(context.Background(), puzzler.FetchConfig{
					Dir:     c.String("dir"),
					Client:  client,
					Workers: c.Int("workers"),
				}); err != nil {
					return exitError(c, err)
				}

				return nil
			},
		},
		{
			Name:  "stitch",
			Usage: "Join the map tiles into one picture",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dir",
					Value: "tiles",
					Usage: "directory holding the tiles",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "westeros.png",
					Usage:   "picture to write",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce the picture to this many colors",
				},
			},
			Action: func(c *cli.Context) error {
				p, closeFunc, err := newPuzzler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closeFunc()

				if _, err := p.Stitch(puzzler.StitchConfig{
					Dir:    c.String("dir"),
					Output: c.String("output"),
					Colors: c.Int("colors"),
				}); err != nil {
					return exitError(c, err)
				}

				return nil
			},
		},
		{
			Name:  "history",
			Usage: "List previous cuts",
			Action: func(c *cli.Context) error {
				if c.String("db") == "" {
					return exitError(c, fmt.Errorf("%w: history needs --db", puzzler.ErrUsage))
				}

				catalog, err := puzzler.OpenCatalog(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer catalog.Close()

				runs, err := catalog.Runs()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, r := range runs {
					fmt.Fprintf(c.App.Writer, "%s\t%s\t%d\t%s\t%s\n", r.Created.Format(time.RFC3339), r.Orientation, r.Pieces, r.Dir, r.Source)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
