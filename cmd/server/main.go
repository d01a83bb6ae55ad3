package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api"
	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
	"github.com/MilenaFRocha/Controle-Acoes/internal/config"
	"github.com/MilenaFRocha/Controle-Acoes/internal/database"
	"github.com/MilenaFRocha/Controle-Acoes/internal/jobs"
	"github.com/MilenaFRocha/Controle-Acoes/internal/quote"
	"github.com/MilenaFRocha/Controle-Acoes/internal/repository"
	"github.com/MilenaFRocha/Controle-Acoes/internal/secret"
	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	operationRepo := repository.NewOperationRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Optional fernet codec for the quote API token
	var codec *secret.Codec
	if cfg.Secret.FernetKey != "" {
		codec, err = secret.NewCodec(cfg.Secret.FernetKey)
		if err != nil {
			log.Fatalf("Failed to initialize encryption: %v", err)
		}
	}

	// Pick the quote source
	source, err := buildQuoteSource(cfg, settingRepo, codec)
	if err != nil {
		log.Fatalf("Failed to configure quote source: %v", err)
	}

	quoteCache, err := quote.NewCache(1024, cfg.Quote.CacheTTL)
	if err != nil {
		log.Fatalf("Failed to create quote cache: %v", err)
	}

	// Create services
	operationService := service.NewOperationService(operationRepo)
	dividendService := service.NewDividendService(dividendRepo)
	quoteService := service.NewQuoteService(source, quoteCache)
	portfolioService := service.NewPortfolioService(operationService, dividendService, quoteService)

	// Background quote refresh
	refresher := jobs.NewQuoteRefresher(operationService, quoteService)
	if err := refresher.Start(cfg.Quote.RefreshSpec); err != nil {
		log.Fatalf("Failed to start quote refresher: %v", err)
	}
	defer refresher.Stop()

	// Create router
	router := api.NewRouter(db, settingRepo, codec, portfolioService, operationService, dividendService, quoteService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// buildQuoteSource selects the configured price source. The brapi provider
// needs its API token, stored fernet-encrypted in the setting table.
func buildQuoteSource(cfg *config.Config, settingRepo *repository.SettingRepository, codec *secret.Codec) (quote.Source, error) {
	switch cfg.Quote.Provider {
	case config.QuoteProviderBrapi:
		if codec == nil {
			return nil, errors.New("FERNET_KEY is required for the brapi provider")
		}

		encrypted, err := settingRepo.Get(context.Background(), repository.SettingQuoteAPIToken)
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			return nil, errors.New("quote API token not set; store it via PUT /api/system/quote-token")
		}
		if err != nil {
			return nil, err
		}

		token, err := codec.Decrypt(encrypted)
		if err != nil {
			return nil, err
		}

		return quote.NewBrapiSource(token), nil
	default:
		return quote.NewSimulatedSource(), nil
	}
}
