package service

import (
	"context"
	"fmt"

	"usecase-market/internal/model"
	"usecase-market/internal/repository"

	"github.com/rs/zerolog"
)

// sellerService implements SellerService.
type sellerService struct {
	useCaseRepo repository.UseCaseRepository
	orderRepo   repository.OrderRepository
	logger      zerolog.Logger
}

// NewSellerService creates a new seller dashboard service.
func NewSellerService(
	useCaseRepo repository.UseCaseRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) SellerService {
	return &sellerService{
		useCaseRepo: useCaseRepo,
		orderRepo:   orderRepo,
		logger:      logger.With().Str("service", "seller").Logger(),
	}
}

// Listings returns the seller's use cases, newest first.
func (s *sellerService) Listings(ctx context.Context, sellerID string) ([]model.UseCase, error) {
	if sellerID == "" {
		return nil, model.ErrAuthRequired
	}

	useCases, err := s.useCaseRepo.GetBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to get listings")
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}

	return useCases, nil
}

// Stats returns aggregate revenue statistics for the seller, combining the
// listing count with the revenue aggregate query.
func (s *sellerService) Stats(ctx context.Context, sellerID string) (*model.SellerStats, error) {
	if sellerID == "" {
		return nil, model.ErrAuthRequired
	}

	useCases, err := s.useCaseRepo.GetBySeller(ctx, sellerID)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to get listings for stats")
		return nil, fmt.Errorf("failed to get seller stats: %w", err)
	}

	revenue, err := s.orderRepo.RevenueStats(ctx, sellerID)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to get revenue stats")
		return nil, fmt.Errorf("failed to get seller stats: %w", err)
	}

	return &model.SellerStats{
		TotalUseCases: len(useCases),
		TotalRevenue:  revenue.TotalRevenue,
		TotalOrders:   revenue.TotalOrders,
		AvgOrderCents: revenue.AvgOrderCents,
	}, nil
}
