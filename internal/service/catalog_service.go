package service

import (
	"context"
	"fmt"

	"usecase-market/internal/catalog"
	"usecase-market/internal/model"
	"usecase-market/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService over the in-memory catalog store,
// falling back to seller listings for records not in the store.
type catalogService struct {
	store       *catalog.Store
	useCaseRepo repository.UseCaseRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *catalog.Store, useCaseRepo repository.UseCaseRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		store:       store,
		useCaseRepo: useCaseRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// Browse returns published use cases filtered by category and query, ordered
// by the sort key.
func (s *catalogService) Browse(ctx context.Context, categoryID, query, sortKey string) []model.UseCase {
	results := catalog.FilterAndSort(s.store.All(), categoryID, query, sortKey)

	s.logger.Debug().
		Str("category", categoryID).
		Str("query", query).
		Str("sort", sortKey).
		Int("results", len(results)).
		Msg("catalog browsed")

	return results
}

// Featured returns the featured use cases.
func (s *catalogService) Featured(ctx context.Context) []model.UseCase {
	return s.store.Featured()
}

// Get retrieves a single use case. The in-memory store is consulted first;
// published seller listings are looked up in the database.
func (s *catalogService) Get(ctx context.Context, id string) (*model.UseCase, error) {
	if id == "" {
		return nil, model.ErrUseCaseNotFound
	}

	if uc, ok := s.store.Get(id); ok {
		return uc, nil
	}

	uc, err := s.useCaseRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("use_case_id", id).Msg("failed to get use case")
		return nil, fmt.Errorf("failed to get use case: %w", err)
	}

	if uc == nil || uc.Status != model.UseCaseStatusPublished {
		s.logger.Debug().Str("use_case_id", id).Msg("use case not found")
		return nil, model.ErrUseCaseNotFound
	}

	return uc, nil
}

// Categories returns the category index.
func (s *catalogService) Categories(ctx context.Context) []model.Category {
	return catalog.Categories()
}
