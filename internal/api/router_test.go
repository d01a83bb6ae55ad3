package api_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api"
	"github.com/MilenaFRocha/Controle-Acoes/internal/config"
	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
	"github.com/MilenaFRocha/Controle-Acoes/internal/repository"
	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
	"github.com/MilenaFRocha/Controle-Acoes/internal/testutil"
)

func newTestRouter(t *testing.T, db *sql.DB, source service.Source) http.Handler {
	t.Helper()

	operationService := testutil.NewTestOperationService(t, db)
	dividendService := testutil.NewTestDividendService(t, db)
	quoteService := testutil.NewTestQuoteService(t, source)
	portfolioService := service.NewPortfolioService(operationService, dividendService, quoteService)

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	return api.NewRouter(db, repository.NewSettingRepository(db), nil,
		portfolioService, operationService, dividendService, quoteService, cfg)
}

// TestRouter_Endpoints walks the full request path: routing, middleware,
// handler, service, and database.
func TestRouter_Endpoints(t *testing.T) {
	t.Run("operation lifecycle over HTTP", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		router := newTestRouter(t, db, testutil.NewFakeQuoteSource(nil))

		payload, _ := json.Marshal(map[string]interface{}{
			"ticker":   "PETR4",
			"date":     "2024-03-15",
			"type":     "buy",
			"quantity": 10,
			"price":    31.50,
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/operation", bytes.NewReader(payload)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("POST /api/operation: expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var created model.Operation
		if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/operation", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET /api/operation: expected 200, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/operation/"+created.ID, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("DELETE /api/operation/{uuid}: expected 204, got %d", rec.Code)
		}
	})

	t.Run("delete with malformed UUID is rejected by middleware", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		router := newTestRouter(t, db, testutil.NewFakeQuoteSource(nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/operation/not-a-uuid", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("portfolio endpoint aggregates over HTTP", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		router := newTestRouter(t, db, testutil.NewFakeQuoteSource(map[string]float64{"PETR4": 35.00}))

		testutil.NewOperation().WithTicker("PETR4").WithQuantity(10).WithPrice(30.00).Build(t, db)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("GET /api/portfolio: expected 200, got %d", rec.Code)
		}

		var summary service.PortfolioSummary
		if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(summary.Lines) != 1 || summary.Lines[0].Ticker != "PETR4" {
			t.Errorf("Unexpected summary: %+v", summary)
		}
	})

	t.Run("dividend total endpoint", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		router := newTestRouter(t, db, testutil.NewFakeQuoteSource(nil))

		testutil.NewDividend().WithValue(4.00).Build(t, db)
		testutil.NewDividend().WithValue(6.00).WithType("jcp").Build(t, db)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dividend/total", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("GET /api/dividend/total: expected 200, got %d", rec.Code)
		}

		var body map[string]float64
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if body["total"] != 10.00 {
			t.Errorf("Expected total 10.00, got %f", body["total"])
		}
	})

	t.Run("health endpoint", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		router := newTestRouter(t, db, testutil.NewFakeQuoteSource(nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/system/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("GET /api/system/health: expected 200, got %d", rec.Code)
		}
	})

	t.Run("quote token endpoint without key responds 503", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		router := newTestRouter(t, db, testutil.NewFakeQuoteSource(nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/system/quote-token", bytes.NewReader([]byte(`{"token":"x"}`))))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("PUT /api/system/quote-token: expected 503, got %d", rec.Code)
		}
	})
}
