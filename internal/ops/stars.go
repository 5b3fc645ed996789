package ops

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hpungsan/starmap/internal/config"
	"github.com/hpungsan/starmap/internal/errors"
	"github.com/hpungsan/starmap/internal/star"
)

// ListStarsInput contains parameters for the ListStars operation.
type ListStarsInput struct {
	// Class limits output to one spectral class (e.g. "G"). Empty means all.
	Class string

	// LabeledOnly keeps only stars that would carry a text label.
	LabeledOnly bool
}

// ListStarsOutput contains the result of the ListStars operation.
type ListStarsOutput struct {
	Stars    []star.Star `json:"stars"`
	Count    int         `json:"count"`
	Excluded int         `json:"excluded"`
}

// ListStars reads and encodes the catalog without rendering it.
func ListStars(ctx context.Context, cfg *config.Config, log zerolog.Logger, input ListStarsInput) (*ListStarsOutput, error) {
	var class star.Class
	if c := strings.ToUpper(strings.TrimSpace(input.Class)); c != "" {
		var ok bool
		class, ok = star.ParseClass(c)
		if !ok {
			return nil, errors.NewInvalidRequest("class must be one of O, B, A, F, G, K, M")
		}
	}

	records, err := readCatalog(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	stars, excluded := star.Encode(records)

	filtered := make([]star.Star, 0, len(stars))
	for _, s := range stars {
		if class != "" && s.Class != class {
			continue
		}
		if input.LabeledOnly && s.Label == "" {
			continue
		}
		filtered = append(filtered, s)
	}

	return &ListStarsOutput{
		Stars:    filtered,
		Count:    len(filtered),
		Excluded: excluded,
	}, nil
}
