package handlers

import (
	"net/http"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/response"
	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
)

// PortfolioHandler handles HTTP requests for the portfolio valuation endpoint.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Portfolio handles GET requests for the current portfolio valuation.
// Quotes are gathered (cache or batch fetch) before aggregation; tickers
// whose quote lookup failed come back with a null currentPrice.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with PortfolioSummary (lines sorted by ticker + dividend total)
// Error: 500 Internal Server Error if the operation log cannot be loaded
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.GetPortfolio(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildPortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
