package model

// Position is the running state for a single ticker while folding the
// operation log in chronological order. It is recomputed from scratch on
// every aggregation and never persisted.
//
// Quantity and TotalCost are clamped at zero when a sell exceeds the
// recorded holding; this tolerates inconsistent data instead of rejecting it.
// RealizedProfitLoss keeps accumulating even after the position goes flat.
type Position struct {
	Quantity           float64
	TotalCost          float64
	AveragePrice       float64
	RealizedProfitLoss float64
}

// PortfolioLine is the per-ticker valuation produced by the aggregator.
// CurrentPrice is nil when no quote was available for the ticker; in that
// case CurrentValue and UnrealizedProfitLoss are reported as zero rather
// than priced against a phantom quote.
type PortfolioLine struct {
	Ticker               string   `json:"ticker"`
	Quantity             float64  `json:"quantity"`
	AveragePrice         float64  `json:"averagePrice"`
	CurrentPrice         *float64 `json:"currentPrice"`
	CurrentValue         float64  `json:"currentValue"`
	UnrealizedProfitLoss float64  `json:"unrealizedProfitLoss"`
	RealizedProfitLoss   float64  `json:"realizedProfitLoss"`
	TotalProfitLoss      float64  `json:"totalProfitLoss"`
}
