package service

import (
	"context"
	"sort"

	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
	"github.com/MilenaFRocha/Controle-Acoes/internal/quote"
)

// QuoteService serves current prices, answering from the TTL cache when it
// can and falling back to the configured source for misses.
type QuoteService struct {
	source Source
	cache  *quote.Cache
}

// Source mirrors quote.Source so tests can substitute a fake without
// importing the quote package.
type Source = quote.Source

// NewQuoteService creates a new QuoteService over the given source and cache.
func NewQuoteService(source Source, cache *quote.Cache) *QuoteService {
	return &QuoteService{
		source: source,
		cache:  cache,
	}
}

// QuotesFor returns quotes for the given tickers. Cached entries are served
// as-is; the remainder is fetched in one concurrent batch. Tickers whose
// lookup fails are simply absent from the result.
func (s *QuoteService) QuotesFor(ctx context.Context, tickers []string) map[string]model.Quote {
	quotes := make(map[string]model.Quote, len(tickers))
	missing := make([]string, 0, len(tickers))

	for _, ticker := range tickers {
		if cached, ok := s.cache.Get(ticker); ok {
			quotes[ticker] = cached
		} else {
			missing = append(missing, ticker)
		}
	}

	if len(missing) > 0 {
		fetched := quote.FetchAll(ctx, s.source, missing)
		for ticker, q := range fetched {
			s.cache.Set(q)
			quotes[ticker] = q
		}
	}

	return quotes
}

// Refresh re-fetches every given ticker, bypassing the cache, and stores the
// settled results. Used by the background refresh job.
func (s *QuoteService) Refresh(ctx context.Context, tickers []string) map[string]model.Quote {
	fetched := quote.FetchAll(ctx, s.source, tickers)
	for _, q := range fetched {
		s.cache.Set(q)
	}
	return fetched
}

// CachedQuotes returns the cached quotes for the given tickers, sorted by
// ticker, skipping tickers with no live cache entry.
func (s *QuoteService) CachedQuotes(tickers []string) []model.Quote {
	quotes := make([]model.Quote, 0, len(tickers))
	for _, ticker := range tickers {
		if cached, ok := s.cache.Get(ticker); ok {
			quotes = append(quotes, cached)
		}
	}
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].Ticker < quotes[j].Ticker
	})
	return quotes
}
