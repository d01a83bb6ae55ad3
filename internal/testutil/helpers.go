package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/MilenaFRocha/Controle-Acoes/internal/quote"
	"github.com/MilenaFRocha/Controle-Acoes/internal/repository"
	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
)

func NewTestOperationService(t *testing.T, db *sql.DB) *service.OperationService {
	t.Helper()

	operationRepo := repository.NewOperationRepository(db)

	return service.NewOperationService(operationRepo)
}

func NewTestDividendService(t *testing.T, db *sql.DB) *service.DividendService {
	t.Helper()

	dividendRepo := repository.NewDividendRepository(db)

	return service.NewDividendService(dividendRepo)
}

func NewTestQuoteService(t *testing.T, source service.Source) *service.QuoteService {
	t.Helper()

	cache, err := quote.NewCache(128, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create quote cache: %v", err)
	}

	return service.NewQuoteService(source, cache)
}

// NewTestPortfolioService wires a portfolio service over the test database
// and the given quote source.
func NewTestPortfolioService(t *testing.T, db *sql.DB, source service.Source) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		NewTestOperationService(t, db),
		NewTestDividendService(t, db),
		NewTestQuoteService(t, source),
	)
}
