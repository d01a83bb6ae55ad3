// Package quote retrieves current prices for tickers.
//
// A Source answers single-ticker lookups; FetchAll fans a batch out
// concurrently and tolerates per-ticker failures. The Cache sits in front of
// a Source so the portfolio endpoint does not hammer the provider between
// refresh runs.
package quote

import (
	"context"
	"math"
	"math/rand"
)

// Source provides the latest price for a single ticker.
type Source interface {
	FetchPrice(ctx context.Context, ticker string) (float64, error)
}

// SimulatedSource produces random prices between 20.00 and 100.00, rounded
// to cents. It stands in for a real market data feed during development.
// The global rand source is used so concurrent lookups are safe.
type SimulatedSource struct{}

// NewSimulatedSource creates a simulated source.
func NewSimulatedSource() *SimulatedSource {
	return &SimulatedSource{}
}

// FetchPrice returns a simulated price for the ticker.
func (s *SimulatedSource) FetchPrice(_ context.Context, _ string) (float64, error) {
	price := rand.Float64()*80 + 20
	return math.Round(price*100) / 100, nil
}
