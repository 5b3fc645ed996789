package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/hpungsan/starmap/internal/config"
	"github.com/hpungsan/starmap/internal/errors"
	"github.com/hpungsan/starmap/internal/logging"
	"github.com/hpungsan/starmap/internal/ops"
	"github.com/hpungsan/starmap/internal/render"
)

// openViewer launches the viewer after a render. Tests replace it.
var openViewer render.Opener = render.OpenInViewer

// renderFlags are shared by the root action and the render command.
func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output HTML path (default output/star_map.html)"},
		&cli.Float64Flag{Name: "max-dist", Aliases: []string{"d"}, Usage: "Distance cutoff in light years (default 35)"},
		&cli.StringFlag{Name: "title", Usage: "Figure title"},
		&cli.StringFlag{Name: "plotly-js", Usage: "Local plotly.js bundle to inline into the page"},
		&cli.BoolFlag{Name: "no-open", Usage: "Do not open the map in a viewer"},
	}
}

// catalogFlags select the catalog.
func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "sqlite", Usage: "Read from a SQLite catalog file instead of MySQL"},
	}
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "starmap",
		Usage:   "Render a 3D map of nearby stars from the HYG catalog",
		Version: Version,
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Config file (default ./starmap.json if present)"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level: debug|info|warn|error"},
		}, append(catalogFlags(), renderFlags()...)...),
		Action: renderAction,
		Commands: []*cli.Command{
			renderCmd(),
			starsCmd(),
			seedCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// renderCmd creates the render command.
func renderCmd() *cli.Command {
	return &cli.Command{
		Name:   "render",
		Usage:  "Read the catalog and write the HTML star map (default command)",
		Flags:  append(catalogFlags(), renderFlags()...),
		Action: renderAction,
	}
}

func renderAction(c *cli.Context) error {
	cfg, log, err := loadConfig(c)
	if err != nil {
		return outputError(err)
	}

	output, err := ops.Render(c.Context, cfg, log, ops.RenderInput{
		Title:   c.String("title"),
		Version: Version,
		Open:    openViewer,
	})
	if err != nil {
		return outputError(err)
	}

	return outputJSON(c.App.Writer, output)
}

// starsCmd creates the stars command.
func starsCmd() *cli.Command {
	return &cli.Command{
		Name:  "stars",
		Usage: "Print the encoded stars as JSON without rendering",
		Flags: append(catalogFlags(),
			&cli.Float64Flag{Name: "max-dist", Aliases: []string{"d"}, Usage: "Distance cutoff in light years (default 35)"},
			&cli.StringFlag{Name: "class", Usage: "Only stars of this spectral class (O|B|A|F|G|K|M)"},
			&cli.BoolFlag{Name: "labeled", Usage: "Only stars bright enough to be labeled"},
		),
		Action: func(c *cli.Context) error {
			cfg, log, err := loadConfig(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.ListStars(c.Context, cfg, log, ops.ListStarsInput{
				Class:       c.String("class"),
				LabeledOnly: c.Bool("labeled"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// seedCmd creates the seed command.
func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Create a SQLite catalog holding a sample of nearby stars",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sqlite", Required: true, Usage: "SQLite catalog file to create"},
		},
		Action: func(c *cli.Context) error {
			log := logging.New(c.App.ErrWriter, c.String("log-level"))

			output, err := ops.Seed(c.Context, log, ops.SeedInput{Path: c.String("sqlite")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// Helper functions

// loadConfig loads the config file and environment, applies flag overrides and validates.
func loadConfig(c *cli.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	if path := c.String("sqlite"); path != "" {
		cfg.CatalogDriver = config.DriverSQLite
		cfg.CatalogDSN = path
	}
	if out := c.String("out"); out != "" {
		cfg.OutputPath = out
	}
	if c.IsSet("max-dist") {
		cfg.MaxDistance = c.Float64("max-dist")
	}
	if js := c.String("plotly-js"); js != "" {
		cfg.PlotlyJSPath = js
	}
	if c.Bool("no-open") {
		no := false
		cfg.OpenBrowser = &no
	}
	if level := c.String("log-level"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}

	return cfg, logging.New(c.App.ErrWriter, cfg.LogLevel), nil
}

// outputJSON marshals result to w as JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.StarmapError); ok {
		if sErr.Err != nil {
			return cli.Exit(fmt.Sprintf("[%s] %s: %v", sErr.Code, sErr.Message, sErr.Err), 1)
		}
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
