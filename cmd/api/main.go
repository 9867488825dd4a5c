package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usecase-market/internal/auth"
	"usecase-market/internal/catalog"
	"usecase-market/internal/config"
	"usecase-market/internal/database"
	"usecase-market/internal/handler"
	"usecase-market/internal/model"
	"usecase-market/internal/payment"
	"usecase-market/internal/repository"
	"usecase-market/internal/router"
	"usecase-market/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting use case marketplace API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	useCaseRepo := repository.NewUseCaseRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Load the catalog fixture: S3, local file, or the embedded default
	useCases, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	store := catalog.NewStore(useCases, logger)

	// Initialize session token codec
	codec, err := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}

	// Initialize services
	catalogService := service.NewCatalogService(store, useCaseRepo, logger)
	authService := service.NewAuthService(userRepo, codec, logger)
	purchaseService := service.NewPurchaseService(orderRepo, catalogService, payment.NewSimulatedProcessor(logger), logger)
	submissionService := service.NewSubmissionService(useCaseRepo, logger)
	sellerService := service.NewSellerService(useCaseRepo, orderRepo, logger)

	// Initialize HTTP handlers
	useCaseHandler := handler.NewUseCaseHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(purchaseService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	sellerHandler := handler.NewSellerHandler(submissionService, sellerService, logger)

	// Initialize router
	mux := router.New(useCaseHandler, orderHandler, authHandler, sellerHandler, codec, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog resolves the catalog source from configuration. S3 failures
// fall back to the local file, and an unconfigured source uses the embedded
// fixture.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) ([]model.UseCase, error) {
	if cfg.S3Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 catalog loader, falling back to local sources")
		} else {
			return s3Loader.Load(ctx, cfg.S3Key)
		}
	}

	if cfg.FilePath != "" {
		return catalog.NewFileLoader(logger).Load(ctx, cfg.FilePath)
	}

	logger.Info().Msg("using embedded catalog fixture (no catalog source configured)")
	return catalog.DefaultUseCases(), nil
}
