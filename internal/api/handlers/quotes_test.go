package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/handlers"
	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
	"github.com/MilenaFRocha/Controle-Acoes/internal/testutil"
)

func TestQuoteHandler_Quotes(t *testing.T) {
	t.Run("returns only cached quotes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		source := testutil.NewFakeQuoteSource(map[string]float64{"PETR4": 31.00, "VALE3": 62.00})
		operationService := testutil.NewTestOperationService(t, db)
		quoteService := testutil.NewTestQuoteService(t, source)
		handler := handlers.NewQuoteHandler(operationService, quoteService)

		testutil.NewOperation().WithTicker("PETR4").Build(t, db)
		testutil.NewOperation().WithTicker("VALE3").Build(t, db)

		// Only PETR4 is warmed into the cache.
		quoteService.Refresh(context.Background(), []string{"PETR4"})

		req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
		rec := httptest.NewRecorder()
		handler.Quotes(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var quotes []model.Quote
		if err := json.NewDecoder(rec.Body).Decode(&quotes); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(quotes) != 1 {
			t.Fatalf("Expected 1 cached quote, got %d", len(quotes))
		}
		if quotes[0].Ticker != "PETR4" || quotes[0].Price != 31.00 {
			t.Errorf("Unexpected quote: %+v", quotes[0])
		}
	})

	t.Run("returns empty array for empty log", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		source := testutil.NewFakeQuoteSource(nil)
		handler := handlers.NewQuoteHandler(testutil.NewTestOperationService(t, db), testutil.NewTestQuoteService(t, source))

		req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
		rec := httptest.NewRecorder()
		handler.Quotes(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var quotes []model.Quote
		if err := json.NewDecoder(rec.Body).Decode(&quotes); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(quotes) != 0 {
			t.Errorf("Expected no quotes, got %d", len(quotes))
		}
	})
}
