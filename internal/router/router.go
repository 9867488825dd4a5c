package router

import (
	"net/http"
	"strings"

	"usecase-market/internal/auth"
	"usecase-market/internal/handler"
	"usecase-market/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	useCaseHandler *handler.UseCaseHandler,
	orderHandler *handler.OrderHandler,
	authHandler *handler.AuthHandler,
	sellerHandler *handler.SellerHandler,
	codec *auth.TokenCodec,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no session required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalog routes
	useCaseRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/use-cases" || r.URL.Path == "/api/use-cases/":
			useCaseHandler.Browse(w, r)
		case r.URL.Path == "/api/use-cases/featured":
			useCaseHandler.Featured(w, r)
		default:
			useCaseHandler.GetByID(w, r)
		}
	}
	mux.HandleFunc("/api/use-cases", useCaseRouteHandler)
	mux.HandleFunc("/api/use-cases/", useCaseRouteHandler)
	mux.HandleFunc("/api/categories", useCaseHandler.Categories)

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/") {
			orderHandler.Create(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/" {
			orderHandler.GetByID(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Auth routes
	mux.HandleFunc("/api/auth/signup", authHandler.SignUp)
	mux.HandleFunc("/api/auth/signin", authHandler.SignIn)
	mux.HandleFunc("/api/auth/signout", authHandler.SignOut)

	// Seller routes
	mux.HandleFunc("/api/seller/use-cases", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			sellerHandler.Submit(w, r)
			return
		}
		sellerHandler.Listings(w, r)
	})
	mux.HandleFunc("/api/seller/stats", sellerHandler.Stats)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var h http.Handler = mux
	h = middleware.Session(codec, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
