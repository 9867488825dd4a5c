package catalog

import (
	"usecase-market/internal/model"

	"github.com/rs/zerolog"
)

// Store is an in-memory, read-only collection of published use cases.
// It is populated once at startup and safe for concurrent reads.
type Store struct {
	useCases []model.UseCase
	byID     map[string]model.UseCase
	logger   zerolog.Logger
}

// NewStore creates a catalog store over the given use cases.
func NewStore(useCases []model.UseCase, logger zerolog.Logger) *Store {
	byID := make(map[string]model.UseCase, len(useCases))
	for _, uc := range useCases {
		byID[uc.ID] = uc
	}

	logger.Info().
		Int("use_cases", len(useCases)).
		Msg("catalog store initialised")

	return &Store{
		useCases: useCases,
		byID:     byID,
		logger:   logger.With().Str("component", "catalog-store").Logger(),
	}
}

// All returns every use case in catalog order.
func (s *Store) All() []model.UseCase {
	out := make([]model.UseCase, len(s.useCases))
	copy(out, s.useCases)
	return out
}

// Get returns the use case with the given ID, if present.
func (s *Store) Get(id string) (*model.UseCase, bool) {
	uc, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &uc, true
}

// Featured returns the use cases flagged as featured, in catalog order.
func (s *Store) Featured() []model.UseCase {
	var out []model.UseCase
	for _, uc := range s.useCases {
		if uc.Featured {
			out = append(out, uc)
		}
	}
	return out
}

// Size returns the number of use cases in the store.
func (s *Store) Size() int {
	return len(s.useCases)
}
