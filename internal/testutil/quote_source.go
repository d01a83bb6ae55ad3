package testutil

import (
	"context"
	"errors"
	"sync"
)

// FakeQuoteSource answers quote lookups from a fixed price map and fails
// every ticker listed in Failing. Safe for concurrent use.
type FakeQuoteSource struct {
	mu      sync.Mutex
	Prices  map[string]float64
	Failing map[string]bool
	Calls   []string
}

// NewFakeQuoteSource creates a source answering with the given prices.
func NewFakeQuoteSource(prices map[string]float64) *FakeQuoteSource {
	return &FakeQuoteSource{
		Prices:  prices,
		Failing: map[string]bool{},
	}
}

// Fail marks a ticker as failing.
func (s *FakeQuoteSource) Fail(ticker string) *FakeQuoteSource {
	s.Failing[ticker] = true
	return s
}

// FetchPrice implements quote.Source.
func (s *FakeQuoteSource) FetchPrice(_ context.Context, ticker string) (float64, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, ticker)
	s.mu.Unlock()

	if s.Failing[ticker] {
		return 0, errors.New("simulated quote failure")
	}
	price, ok := s.Prices[ticker]
	if !ok {
		return 0, errors.New("no price configured for ticker")
	}
	return price, nil
}

// CallCount returns how many lookups were attempted.
func (s *FakeQuoteSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
