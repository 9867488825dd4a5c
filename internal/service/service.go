package service

import (
	"context"

	"usecase-market/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines browse operations over the marketplace catalog.
type CatalogService interface {
	// Browse returns published use cases filtered by category and query,
	// ordered by the sort key.
	Browse(ctx context.Context, categoryID, query, sortKey string) []model.UseCase

	// Featured returns the featured use cases.
	Featured(ctx context.Context) []model.UseCase

	// Get retrieves a single use case from the catalog or from seller
	// listings.
	Get(ctx context.Context, id string) (*model.UseCase, error)

	// Categories returns the category index.
	Categories(ctx context.Context) []model.Category
}

// AuthService defines account and session operations.
type AuthService interface {
	// SignUp registers a new account and issues a session token.
	SignUp(ctx context.Context, req *model.SignUpRequest) (*model.SessionResponse, error)

	// SignIn verifies credentials and issues a session token.
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.SessionResponse, error)

	// SignOut ends the session. Tokens are stateless, so this only
	// acknowledges; the client discards the token.
	SignOut(ctx context.Context, userID string) error
}

// PurchaseService defines the order flow for buying a use case.
type PurchaseService interface {
	// Purchase creates and completes an order for the given buyer.
	Purchase(ctx context.Context, buyerID, useCaseID string) (*model.Order, error)

	// GetOrder retrieves one of the buyer's orders by ID.
	GetOrder(ctx context.Context, buyerID string, id uuid.UUID) (*model.Order, error)
}

// SubmissionService defines the seller flow for listing a use case.
type SubmissionService interface {
	// Submit validates and normalises a submission draft and creates the
	// listing.
	Submit(ctx context.Context, sellerID string, req *model.SubmissionRequest) (*model.UseCase, error)
}

// SellerService defines the seller dashboard operations.
type SellerService interface {
	// Listings returns the seller's use cases, newest first.
	Listings(ctx context.Context, sellerID string) ([]model.UseCase, error)

	// Stats returns aggregate revenue statistics for the seller.
	Stats(ctx context.Context, sellerID string) (*model.SellerStats, error)
}
