package repository

import (
	"context"

	"usecase-market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	// Create inserts a new user account.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email address. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// UseCaseRepository defines the interface for seller-submitted use cases.
type UseCaseRepository interface {
	// Create inserts a new use case listing.
	Create(ctx context.Context, useCase *model.UseCase) error

	// GetByID retrieves a single use case by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.UseCase, error)

	// GetBySeller retrieves a seller's use cases, newest first.
	GetBySeller(ctx context.Context, sellerID string) ([]model.UseCase, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// UpdateStatus transitions an order's status within the provided transaction.
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.OrderStatus) error

	// GetByID retrieves an order by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// RevenueStats aggregates completed-order revenue for a seller's listings.
	RevenueStats(ctx context.Context, sellerID string) (*model.RevenueStats, error)
}
