package ops

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/hpungsan/starmap/internal/catalog"
	"github.com/hpungsan/starmap/internal/config"
	"github.com/hpungsan/starmap/internal/render"
	"github.com/hpungsan/starmap/internal/scene"
	"github.com/hpungsan/starmap/internal/star"
)

// RenderInput contains parameters for the Render operation.
type RenderInput struct {
	// Title overrides the figure title
	Title string

	// Version is stamped into the page
	Version string

	// Open launches the viewer for the written file. nil uses render.OpenInViewer.
	// Ignored when cfg.ShouldOpenBrowser() is false.
	Open render.Opener
}

// RenderOutput contains the result of the Render operation.
type RenderOutput struct {
	Path     string         `json:"path"`
	RenderID string         `json:"render_id"`
	Bytes    int            `json:"bytes"`
	Read     int            `json:"rows_read"`
	Rendered int            `json:"stars_rendered"`
	Excluded int            `json:"stars_excluded"`
	Series   map[string]int `json:"series"`
	Opened   bool           `json:"opened"`
}

// Render runs the whole pipeline: read the catalog, encode the stars,
// build the scene, write the HTML file and optionally open it.
// The catalog connection is closed before anything is rendered.
func Render(ctx context.Context, cfg *config.Config, log zerolog.Logger, input RenderInput) (*RenderOutput, error) {
	if err := render.ValidateOutputPath(cfg.OutputPath); err != nil {
		return nil, err
	}

	records, err := readCatalog(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	stars, excluded := star.Encode(records)
	log.Debug().Int("stars", len(stars)).Int("excluded", excluded).Msg("encoded stars")

	sc := scene.Build(stars, scene.Options{Title: input.Title, MaxDistance: cfg.MaxDistance})
	log.Info().Int("series", len(sc.Series)).Int("points", sc.Points()).Msg("built scene")

	res, err := render.NewRenderer().Write(sc, render.Options{
		Path:         cfg.OutputPath,
		PlotlyJSPath: cfg.PlotlyJSPath,
		Version:      input.Version,
		Excluded:     excluded,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", res.Path).Str("render_id", res.RenderID).Int("bytes", res.Bytes).Msg("wrote star map")

	output := &RenderOutput{
		Path:     res.Path,
		RenderID: res.RenderID,
		Bytes:    res.Bytes,
		Read:     len(records),
		Rendered: len(stars),
		Excluded: excluded,
		Series:   make(map[string]int, len(sc.Series)),
	}
	for class, n := range sc.Counts() {
		output.Series[string(class)] = n
	}

	if cfg.ShouldOpenBrowser() {
		open := input.Open
		if open == nil {
			open = render.OpenInViewer
		}
		// The map is already on disk; a missing viewer is not a failed render.
		if err := open(res.Path); err != nil {
			log.Warn().Err(err).Str("path", res.Path).Msg("failed to open viewer")
		} else {
			output.Opened = true
		}
	}

	return output, nil
}

// readCatalog reads all rows under the configured distance and releases the connection.
func readCatalog(ctx context.Context, cfg *config.Config, log zerolog.Logger) ([]star.Record, error) {
	src, err := catalog.SourceFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	log.Debug().Stringer("catalog", src).Float64("max_distance", cfg.MaxDistance).Msg("reading catalog")

	var records []star.Record
	err = catalog.WithCatalog(ctx, src, func(db *sql.DB) error {
		var err error
		records, err = catalog.Read(ctx, db, cfg.MaxDistance)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Stringer("catalog", src).Int("rows", len(records)).Msg("read catalog")
	return records, nil
}
