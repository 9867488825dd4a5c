package repository

import (
	"context"
	"fmt"

	"usecase-market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new order within the provided transaction.
func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, buyer_id, use_case_id, amount_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query,
		order.ID,
		order.BuyerID,
		order.UseCaseID,
		order.AmountCents,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("status", string(order.Status)).
		Msg("order created successfully")

	return nil
}

// UpdateStatus transitions an order's status within the provided transaction.
func (r *orderRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().Str("order_id", id.String()).Msg("order not found for status update")
		return model.ErrOrderNotFound
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT id, buyer_id, use_case_id, amount_cents, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.BuyerID,
		&order.UseCaseID,
		&order.AmountCents,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &order, nil
}

// RevenueStats aggregates completed-order revenue for a seller's listings.
// This is the single-query replacement for the per-order summation the
// dashboard would otherwise do client-side.
func (r *orderRepository) RevenueStats(ctx context.Context, sellerID string) (*model.RevenueStats, error) {
	query := `
		SELECT
			COALESCE(SUM(o.amount_cents), 0) AS total_revenue,
			COUNT(o.id) AS total_orders,
			COALESCE(ROUND(AVG(o.amount_cents)), 0) AS avg_order_value
		FROM orders o
		JOIN use_cases u ON u.id = o.use_case_id
		WHERE u.seller_id = $1
		  AND o.status = 'completed'
	`

	var stats model.RevenueStats
	err := r.pool.QueryRow(ctx, query, sellerID).Scan(
		&stats.TotalRevenue,
		&stats.TotalOrders,
		&stats.AvgOrderCents,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to query revenue stats")
		return nil, fmt.Errorf("failed to query revenue stats: %w", err)
	}

	return &stats, nil
}
