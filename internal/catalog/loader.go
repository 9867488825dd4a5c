package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"usecase-market/internal/model"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading a catalog fixture.
type Loader interface {
	// Load reads a JSON catalog file and returns its use cases.
	Load(ctx context.Context, source string) ([]model.UseCase, error)
}

// fileLoader implements Loader for reading catalog files from the local
// file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON catalog file and returns its use cases.
// The file is expected to contain a JSON array of use case records.
func (l *fileLoader) Load(ctx context.Context, source string) ([]model.UseCase, error) {
	l.logger.Info().Str("file", source).Msg("loading catalog file")

	file, err := os.Open(source)
	if err != nil {
		l.logger.Error().Err(err).Str("file", source).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", source, err)
	}
	defer file.Close()

	var useCases []model.UseCase
	if err := json.NewDecoder(file).Decode(&useCases); err != nil {
		l.logger.Error().Err(err).Str("file", source).Msg("failed to decode catalog file")
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", source, err)
	}

	if err := validateUseCases(useCases); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", source, err)
	}

	l.logger.Info().
		Str("file", source).
		Int("use_cases", len(useCases)).
		Msg("catalog file loaded successfully")

	return useCases, nil
}

// validateUseCases checks fixture invariants: unique IDs and consistent
// price encodings (price-in-cents must equal the display price x 100 when
// both are present).
func validateUseCases(useCases []model.UseCase) error {
	seen := make(map[string]struct{}, len(useCases))
	for i, uc := range useCases {
		if uc.ID == "" {
			return fmt.Errorf("use case at index %d has no ID", i)
		}
		if _, dup := seen[uc.ID]; dup {
			return fmt.Errorf("duplicate use case ID %q", uc.ID)
		}
		seen[uc.ID] = struct{}{}

		if uc.Price != "" && uc.PriceCents > 0 {
			want := displayPrice(uc.Price).Mul(centsPerUnit).Round(0).IntPart()
			if want != uc.PriceCents {
				return fmt.Errorf("use case %q: price %q does not match %d cents", uc.ID, uc.Price, uc.PriceCents)
			}
		}
	}
	return nil
}
