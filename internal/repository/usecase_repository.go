package repository

import (
	"context"
	"fmt"

	"usecase-market/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// useCaseRepository implements the UseCaseRepository interface using PostgreSQL.
type useCaseRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUseCaseRepository creates a new PostgreSQL-backed use case repository.
func NewUseCaseRepository(pool *pgxpool.Pool, logger zerolog.Logger) UseCaseRepository {
	return &useCaseRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "usecase").Logger(),
	}
}

// Create inserts a new use case listing.
func (r *useCaseRepository) Create(ctx context.Context, useCase *model.UseCase) error {
	query := `
		INSERT INTO use_cases (
			id, title, description, implementation_guide, category, price_cents,
			tags, tools_required, status, seller_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		useCase.ID,
		useCase.Title,
		useCase.Description,
		useCase.ImplementationGuide,
		useCase.Category,
		useCase.PriceCents,
		useCase.Tags,
		useCase.ToolsRequired,
		useCase.Status,
		useCase.Seller.ID,
		useCase.CreatedAt,
		useCase.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("use_case_id", useCase.ID).Msg("failed to create use case")
		return fmt.Errorf("failed to create use case: %w", err)
	}

	r.logger.Debug().Str("use_case_id", useCase.ID).Msg("use case created successfully")

	return nil
}

// GetByID retrieves a single use case by its ID.
func (r *useCaseRepository) GetByID(ctx context.Context, id string) (*model.UseCase, error) {
	query := `
		SELECT id, title, description, implementation_guide, category, price_cents,
		       tags, tools_required, status, seller_id, created_at, updated_at
		FROM use_cases
		WHERE id = $1
	`

	uc, err := r.scanUseCase(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("use_case_id", id).Msg("use case not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("use_case_id", id).Msg("failed to query use case")
		return nil, fmt.Errorf("failed to query use case: %w", err)
	}

	return uc, nil
}

// GetBySeller retrieves a seller's use cases, newest first.
func (r *useCaseRepository) GetBySeller(ctx context.Context, sellerID string) ([]model.UseCase, error) {
	query := `
		SELECT id, title, description, implementation_guide, category, price_cents,
		       tags, tools_required, status, seller_id, created_at, updated_at
		FROM use_cases
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		r.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to query seller use cases")
		return nil, fmt.Errorf("failed to query seller use cases: %w", err)
	}
	defer rows.Close()

	var useCases []model.UseCase
	for rows.Next() {
		uc, err := r.scanUseCase(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan use case row")
			return nil, fmt.Errorf("failed to scan use case: %w", err)
		}
		useCases = append(useCases, *uc)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating use case rows")
		return nil, fmt.Errorf("error iterating use cases: %w", err)
	}

	return useCases, nil
}

// scanUseCase scans a use case row in column order shared by all queries.
func (r *useCaseRepository) scanUseCase(row pgx.Row) (*model.UseCase, error) {
	var uc model.UseCase
	err := row.Scan(
		&uc.ID,
		&uc.Title,
		&uc.Description,
		&uc.ImplementationGuide,
		&uc.Category,
		&uc.PriceCents,
		&uc.Tags,
		&uc.ToolsRequired,
		&uc.Status,
		&uc.Seller.ID,
		&uc.CreatedAt,
		&uc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &uc, nil
}
