package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/handlers"
	custommiddleware "github.com/MilenaFRocha/Controle-Acoes/internal/api/middleware"
	"github.com/MilenaFRocha/Controle-Acoes/internal/config"
	"github.com/MilenaFRocha/Controle-Acoes/internal/repository"
	"github.com/MilenaFRocha/Controle-Acoes/internal/secret"
	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	db *sql.DB,
	settingRepo *repository.SettingRepository,
	codec *secret.Codec,
	portfolioService *service.PortfolioService,
	operationService *service.OperationService,
	dividendService *service.DividendService,
	quoteService *service.QuoteService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db, settingRepo, codec)
			r.Get("/health", systemHandler.Health)
			r.Put("/quote-token", systemHandler.SetQuoteToken)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/", portfolioHandler.Portfolio)
		})

		r.Route("/operation", func(r chi.Router) {
			operationHandler := handlers.NewOperationHandler(operationService)
			r.Get("/", operationHandler.History)
			r.Post("/", operationHandler.CreateOperation)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", operationHandler.DeleteOperation)
			})
		})

		r.Route("/dividend", func(r chi.Router) {
			dividendHandler := handlers.NewDividendHandler(dividendService)
			r.Get("/", dividendHandler.Dividends)
			r.Get("/total", dividendHandler.DividendTotal)
			r.Post("/", dividendHandler.CreateDividend)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", dividendHandler.DeleteDividend)
			})
		})

		r.Route("/quote", func(r chi.Router) {
			quoteHandler := handlers.NewQuoteHandler(operationService, quoteService)
			r.Get("/", quoteHandler.Quotes)
		})
	})

	return r
}
