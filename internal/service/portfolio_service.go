package service

import (
	"context"
	"fmt"

	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
	"github.com/MilenaFRocha/Controle-Acoes/internal/portfolio"
)

// PortfolioService coordinates the collaborators around the aggregation
// core: it loads the operation snapshot, gathers the quote batch, and only
// then hands both to the pure aggregator.
type PortfolioService struct {
	operationService *OperationService
	dividendService  *DividendService
	quoteService     *QuoteService
}

// NewPortfolioService creates a new PortfolioService with the provided service dependencies.
func NewPortfolioService(
	operationService *OperationService,
	dividendService *DividendService,
	quoteService *QuoteService,
) *PortfolioService {
	return &PortfolioService{
		operationService: operationService,
		dividendService:  dividendService,
		quoteService:     quoteService,
	}
}

// PortfolioSummary is the full valuation returned by the portfolio endpoint:
// one line per held (or profitably closed) ticker plus the payout total.
type PortfolioSummary struct {
	Lines          []model.PortfolioLine `json:"lines"`
	TotalDividends float64               `json:"totalDividends"`
}

// GetPortfolio rebuilds the portfolio from the current operation log.
// The quote batch fully settles (success or per-ticker failure) before the
// aggregator runs.
func (s *PortfolioService) GetPortfolio(ctx context.Context) (PortfolioSummary, error) {
	operations, err := s.operationService.GetOperations()
	if err != nil {
		return PortfolioSummary{}, fmt.Errorf("failed to load operations: %w", err)
	}

	quotes := s.quoteService.QuotesFor(ctx, portfolio.DistinctTickers(operations))

	lines := portfolio.Aggregate(operations, quotes)

	totalDividends, err := s.dividendService.GetDividendTotal()
	if err != nil {
		return PortfolioSummary{}, fmt.Errorf("failed to total dividends: %w", err)
	}

	return PortfolioSummary{
		Lines:          lines,
		TotalDividends: totalDividends,
	}, nil
}
