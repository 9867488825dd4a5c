package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"usecase-market/internal/auth"
	"usecase-market/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			id VARCHAR(50) PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			full_name VARCHAR(255) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			is_seller BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS use_cases (
			id VARCHAR(50) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			implementation_guide TEXT NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL DEFAULT '',
			price_cents BIGINT NOT NULL CHECK (price_cents > 0),
			tags TEXT[],
			tools_required TEXT[],
			status VARCHAR(20) NOT NULL DEFAULT 'draft',
			seller_id VARCHAR(50) NOT NULL REFERENCES profiles(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		-- use_case_id carries no foreign key: built-in catalog entries are
		-- served from memory and never exist in the use_cases table.
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			buyer_id VARCHAR(50) NOT NULL REFERENCES profiles(id),
			use_case_id VARCHAR(50) NOT NULL,
			amount_cents BIGINT NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_use_cases_seller_id ON use_cases(seller_id);
		CREATE INDEX IF NOT EXISTS idx_orders_buyer_id ON orders(buyer_id);
		CREATE INDEX IF NOT EXISTS idx_orders_use_case_id ON orders(use_case_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedUsers inserts test account data into the database.
func SeedUsers(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	hash, err := auth.HashPassword("hunter22hunter22")
	if err != nil {
		t.Fatalf("failed to hash seed password: %v", err)
	}

	users := []struct {
		id       string
		email    string
		fullName string
		isSeller bool
	}{
		{"seller-1", "seller1@example.com", "Seller One", true},
		{"seller-2", "seller2@example.com", "Seller Two", true},
		{"buyer-1", "buyer1@example.com", "Buyer One", false},
	}

	for _, u := range users {
		_, err := pool.Exec(ctx,
			"INSERT INTO profiles (id, email, full_name, password_hash, is_seller) VALUES ($1, $2, $3, $4, $5)",
			u.id, u.email, u.fullName, hash, u.isSeller,
		)
		if err != nil {
			t.Fatalf("failed to seed user %s: %v", u.id, err)
		}
	}
}

// SeedUseCases inserts test listings owned by the seeded sellers.
func SeedUseCases(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	useCases := []model.UseCase{
		{
			ID:          "uc-1",
			Title:       "Invoice OCR Pipeline",
			Description: "Extract structured data from scanned invoices",
			Category:    "Document Processing",
			PriceCents:  4999,
			Tags:        []string{"ocr", "invoices"},
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-1"},
		},
		{
			ID:          "uc-2",
			Title:       "Churn Prediction Model",
			Description: "Score accounts by churn risk",
			Category:    "Analytics & Insights",
			PriceCents:  8900,
			Status:      model.UseCaseStatusPublished,
			Seller:      model.Seller{ID: "seller-1"},
		},
		{
			ID:          "uc-3",
			Title:       "Draft Listing",
			Description: "Not yet published",
			Category:    "Content Creation",
			PriceCents:  1900,
			Status:      model.UseCaseStatusDraft,
			Seller:      model.Seller{ID: "seller-2"},
		},
	}

	for _, uc := range useCases {
		_, err := pool.Exec(ctx,
			`INSERT INTO use_cases (id, title, description, category, price_cents, tags, status, seller_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uc.ID, uc.Title, uc.Description, uc.Category, uc.PriceCents, uc.Tags, uc.Status, uc.Seller.ID,
		)
		if err != nil {
			t.Fatalf("failed to seed use case %s: %v", uc.ID, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "use_cases", "profiles"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
