package ops

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hpungsan/starmap/internal/catalog"
	"github.com/hpungsan/starmap/internal/errors"
	"github.com/hpungsan/starmap/internal/star"
)

// SeedInput contains parameters for the Seed operation.
type SeedInput struct {
	// Path is the SQLite catalog file to create or extend
	Path string

	// Records to insert. nil means catalog.SampleRecords().
	Records []star.Record
}

// SeedOutput contains the result of the Seed operation.
type SeedOutput struct {
	Path     string `json:"path"`
	Inserted int    `json:"inserted"`
}

// Seed creates a SQLite catalog with the hyg schema and inserts records into it.
func Seed(ctx context.Context, log zerolog.Logger, input SeedInput) (*SeedOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, errors.NewInvalidRequest("sqlite path is required")
	}

	records := input.Records
	if records == nil {
		records = catalog.SampleRecords()
	}

	db, err := catalog.Create(input.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	n, err := catalog.Seed(ctx, db, records)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", input.Path).Int("inserted", n).Msg("seeded catalog")
	return &SeedOutput{Path: input.Path, Inserted: n}, nil
}
