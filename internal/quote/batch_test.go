package quote

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// stubSource answers from a fixed price map and fails every ticker in the
// failing set.
type stubSource struct {
	mu      sync.Mutex
	prices  map[string]float64
	failing map[string]bool
	calls   int
}

func (s *stubSource) FetchPrice(_ context.Context, ticker string) (float64, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.failing[ticker] {
		return 0, errors.New("provider unavailable")
	}
	price, ok := s.prices[ticker]
	if !ok {
		return 0, errors.New("unknown ticker")
	}
	return price, nil
}

func TestFetchAll_AllSucceed(t *testing.T) {
	source := &stubSource{prices: map[string]float64{"PETR4": 31.50, "VALE3": 61.20}}

	quotes := FetchAll(context.Background(), source, []string{"PETR4", "VALE3"})

	if len(quotes) != 2 {
		t.Fatalf("Expected 2 quotes, got %d", len(quotes))
	}
	if quotes["PETR4"].Price != 31.50 {
		t.Errorf("Expected PETR4 at 31.50, got %f", quotes["PETR4"].Price)
	}
	if quotes["VALE3"].Price != 61.20 {
		t.Errorf("Expected VALE3 at 61.20, got %f", quotes["VALE3"].Price)
	}
}

func TestFetchAll_PartialFailureDoesNotAbortBatch(t *testing.T) {
	source := &stubSource{
		prices:  map[string]float64{"PETR4": 31.50, "VALE3": 61.20},
		failing: map[string]bool{"VALE3": true},
	}

	quotes := FetchAll(context.Background(), source, []string{"PETR4", "VALE3"})

	if len(quotes) != 1 {
		t.Fatalf("Expected 1 quote, got %d", len(quotes))
	}
	if _, ok := quotes["VALE3"]; ok {
		t.Error("Expected failed ticker to be absent from result")
	}
	if quotes["PETR4"].Price != 31.50 {
		t.Errorf("Expected surviving ticker to keep its price, got %f", quotes["PETR4"].Price)
	}
	if source.calls != 2 {
		t.Errorf("Expected both tickers to be attempted, got %d calls", source.calls)
	}
}

func TestFetchAll_EmptyTickerList(t *testing.T) {
	source := &stubSource{}

	quotes := FetchAll(context.Background(), source, nil)

	if len(quotes) != 0 {
		t.Errorf("Expected empty map, got %d entries", len(quotes))
	}
	if source.calls != 0 {
		t.Errorf("Expected no lookups, got %d", source.calls)
	}
}

func TestCache_SetGetAndClear(t *testing.T) {
	cache, err := NewCache(100, time.Minute)
	if err != nil {
		t.Fatalf("NewCache returned unexpected error: %v", err)
	}

	quotes := FetchAll(context.Background(), &stubSource{prices: map[string]float64{"PETR4": 31.50}}, []string{"PETR4"})
	cache.Set(quotes["PETR4"])

	cached, ok := cache.Get("PETR4")
	if !ok {
		t.Fatal("Expected cached quote for PETR4")
	}
	if cached.Price != 31.50 {
		t.Errorf("Expected cached price 31.50, got %f", cached.Price)
	}

	cache.Clear()
	if _, ok := cache.Get("PETR4"); ok {
		t.Error("Expected cache to be empty after Clear")
	}
}

func TestSimulatedSource_PriceRange(t *testing.T) {
	source := NewSimulatedSource()

	for i := 0; i < 100; i++ {
		price, err := source.FetchPrice(context.Background(), "PETR4")
		if err != nil {
			t.Fatalf("FetchPrice returned unexpected error: %v", err)
		}
		if price < 20 || price > 100 {
			t.Fatalf("Expected simulated price in [20, 100], got %f", price)
		}
	}
}
