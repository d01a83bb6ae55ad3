package handlers

import (
	"net/http"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/response"
	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
)

// QuoteHandler handles HTTP requests for the quote endpoints.
type QuoteHandler struct {
	operationService *service.OperationService
	quoteService     *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler with the provided service dependencies.
func NewQuoteHandler(operationService *service.OperationService, quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		operationService: operationService,
		quoteService:     quoteService,
	}
}

// Quotes handles GET requests for the currently cached quotes of every
// ticker in the operation log. Tickers without a live cache entry are
// omitted rather than reported with a stale or zero price.
//
// Endpoint: GET /api/quote
// Response: 200 OK with array of Quote sorted by ticker
// Error: 500 Internal Server Error if the ticker list cannot be loaded
func (h *QuoteHandler) Quotes(w http.ResponseWriter, _ *http.Request) {
	tickers, err := h.operationService.GetDistinctTickers()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveQuotes.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, h.quoteService.CachedQuotes(tickers))
}
