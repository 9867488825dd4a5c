package service

import (
	"context"
	"fmt"
	"time"

	"usecase-market/internal/model"
	"usecase-market/internal/payment"
	"usecase-market/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// purchaseService implements PurchaseService.
//
// The order and its final status are written in a single transaction, so a
// crash between the payment step and the status update can no longer strand
// an order in "pending". Repeated purchase attempts are not deduplicated:
// each call creates a new order.
type purchaseService struct {
	orderRepo repository.OrderRepository
	catalog   CatalogService
	processor payment.Processor
	logger    zerolog.Logger
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(
	orderRepo repository.OrderRepository,
	catalog CatalogService,
	processor payment.Processor,
	logger zerolog.Logger,
) PurchaseService {
	return &purchaseService{
		orderRepo: orderRepo,
		catalog:   catalog,
		processor: processor,
		logger:    logger.With().Str("service", "purchase").Logger(),
	}
}

// Purchase creates and completes an order for the given buyer.
// Preconditions (checked before any order or payment call): an authenticated
// buyer, and the buyer must not be the seller of the use case.
func (s *purchaseService) Purchase(ctx context.Context, buyerID, useCaseID string) (*model.Order, error) {
	if buyerID == "" {
		s.logger.Warn().Str("use_case_id", useCaseID).Msg("purchase without session")
		return nil, model.ErrAuthRequired
	}

	useCase, err := s.catalog.Get(ctx, useCaseID)
	if err != nil {
		return nil, err
	}

	if useCase.Seller.ID == buyerID {
		s.logger.Warn().
			Str("buyer_id", buyerID).
			Str("use_case_id", useCaseID).
			Msg("self-purchase blocked")
		return nil, model.ErrSelfPurchase
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:          uuid.New(),
		BuyerID:     buyerID,
		UseCaseID:   useCase.ID,
		AmountCents: useCase.PriceCents,
		Status:      model.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.orderRepo.Create(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if chargeErr := s.processor.Charge(ctx, order.ID.String(), order.AmountCents); chargeErr != nil {
		s.logger.Warn().
			Err(chargeErr).
			Str("order_id", order.ID.String()).
			Msg("payment failed")

		if err = s.orderRepo.UpdateStatus(ctx, tx, order.ID, model.OrderStatusFailed); err != nil {
			return nil, fmt.Errorf("failed to record payment failure: %w", err)
		}
		if err = tx.Commit(ctx); err != nil {
			s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit failed order")
			return nil, fmt.Errorf("failed to record payment failure: %w", err)
		}

		return nil, model.NewDomainError(model.ErrCodePaymentFailed, chargeErr.Error())
	}

	if err = s.orderRepo.UpdateStatus(ctx, tx, order.ID, model.OrderStatusCompleted); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to complete order")
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}

	order.Status = model.OrderStatusCompleted
	order.UpdatedAt = time.Now()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("buyer_id", buyerID).
		Str("use_case_id", useCase.ID).
		Int64("amount_cents", order.AmountCents).
		Msg("purchase completed")

	return order, nil
}

// GetOrder retrieves one of the buyer's orders by ID. Orders belonging to
// other buyers are reported as not found.
func (s *purchaseService) GetOrder(ctx context.Context, buyerID string, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil || order.BuyerID != buyerID {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found for buyer")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}
