package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/dualstream/internal/adapter/http/handler"
	"github.com/iho/dualstream/internal/adapter/http/middleware"
	"github.com/iho/dualstream/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DocumentHandler    *handler.DocumentHandler
	TransactionHandler *handler.TransactionHandler
	TransferHandler    *handler.TransferHandler
	WalletHandler      *handler.WalletHandler
	PortfolioHandler   *handler.PortfolioHandler
	SnapshotHandler    *handler.SnapshotHandler
	HealthHandler      *handler.HealthHandler
	JWTManager         *auth.JWTManager // optional; nil disables auth
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))
		}

		// Document
		r.Get("/document", cfg.DocumentHandler.Get)
		r.Get("/document/consistency", cfg.DocumentHandler.Consistency)
		r.Put("/budget", cfg.DocumentHandler.SetBudget)

		// Transactions and transfers
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
		})
		r.Post("/transfers", cfg.TransferHandler.Create)

		// Wallets
		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", cfg.WalletHandler.Create)
			r.Get("/", cfg.WalletHandler.List)
			r.Patch("/{id}", cfg.WalletHandler.Update)
			r.Delete("/{id}", cfg.WalletHandler.Delete)
		})

		// Projects, investments, goals
		r.Post("/projects", cfg.PortfolioHandler.CreateProject)
		r.Post("/investments", cfg.PortfolioHandler.CreateInvestment)
		r.Route("/goals", func(r chi.Router) {
			r.Post("/", cfg.PortfolioHandler.CreateGoal)
			r.Patch("/{id}", cfg.PortfolioHandler.UpdateGoal)
		})

		// Export and import
		r.Get("/export", cfg.SnapshotHandler.Export)
		r.Post("/import", cfg.SnapshotHandler.Import)
	})

	return r
}
