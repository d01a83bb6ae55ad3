// Package portfolio reconstructs per-ticker positions from the operation log.
//
// The aggregation is a pure fold: it receives a snapshot of operations and a
// quote map, and returns freshly built portfolio lines. It holds no state,
// performs no I/O and never fails; malformed operations are the validation
// layer's responsibility and are assumed to have been rejected before they
// reached the log.
package portfolio

import (
	"sort"

	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
)

// Aggregate folds the given operations chronologically and projects one
// PortfolioLine per ticker that either still has a holding or has non-zero
// realized profit/loss. Tickers fully sold at exactly break-even are dropped.
//
// Operations are stable-sorted by date; operations sharing a date are applied
// in the order they appear in the input slice. Callers that load from the
// repository get insertion order (created_at), which makes the fold
// deterministic for same-day operations.
//
// Quotes may be missing entries; a ticker without a quote is reported with a
// nil CurrentPrice and zero current value and unrealized profit/loss.
func Aggregate(operations []model.Operation, quotes map[string]model.Quote) []model.PortfolioLine {
	sorted := make([]model.Operation, len(operations))
	copy(sorted, operations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	positions := make(map[string]*model.Position)

	for _, op := range sorted {
		pos, ok := positions[op.Ticker]
		if !ok {
			pos = &model.Position{}
			positions[op.Ticker] = pos
		}

		switch op.Type {
		case model.OperationBuy:
			pos.TotalCost += op.Quantity*op.Price + op.Brokerage + op.OtherFees
			pos.Quantity += op.Quantity
		case model.OperationSell:
			// Cost basis uses the average price as it stood before this
			// sell; a sell never moves the average, it only shrinks the
			// position.
			costPerShareSold := pos.AveragePrice
			saleValue := op.Quantity*op.Price - op.Brokerage - op.OtherFees
			costBasisSold := op.Quantity * costPerShareSold

			pos.RealizedProfitLoss += saleValue - costBasisSold
			pos.Quantity -= op.Quantity
			pos.TotalCost -= costBasisSold

			// Selling more than the recorded holding is tolerated as
			// inconsistent data, not an error.
			if pos.Quantity < 0 {
				pos.Quantity = 0
			}
			if pos.TotalCost < 0 {
				pos.TotalCost = 0
			}
		}

		if pos.Quantity > 0 {
			pos.AveragePrice = pos.TotalCost / pos.Quantity
		} else {
			pos.AveragePrice = 0
		}
	}

	lines := make([]model.PortfolioLine, 0, len(positions))
	for ticker, pos := range positions {
		if pos.Quantity <= 0 && pos.RealizedProfitLoss == 0 {
			continue
		}

		line := model.PortfolioLine{
			Ticker:             ticker,
			Quantity:           pos.Quantity,
			AveragePrice:       pos.AveragePrice,
			RealizedProfitLoss: pos.RealizedProfitLoss,
		}

		if quote, ok := quotes[ticker]; ok {
			price := quote.Price
			line.CurrentPrice = &price
			line.CurrentValue = pos.Quantity * price
			if pos.Quantity > 0 {
				line.UnrealizedProfitLoss = line.CurrentValue - pos.TotalCost
			}
		}
		line.TotalProfitLoss = line.UnrealizedProfitLoss + line.RealizedProfitLoss

		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Ticker < lines[j].Ticker
	})

	return lines
}

// DistinctTickers returns the unique tickers appearing in the operation log,
// in no particular order. Used to size the quote batch.
func DistinctTickers(operations []model.Operation) []string {
	seen := make(map[string]struct{})
	tickers := make([]string, 0)
	for _, op := range operations {
		if _, ok := seen[op.Ticker]; ok {
			continue
		}
		seen[op.Ticker] = struct{}{}
		tickers = append(tickers, op.Ticker)
	}
	return tickers
}
