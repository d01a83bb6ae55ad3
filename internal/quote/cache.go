package quote

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
)

// Cache keeps recently fetched quotes with a TTL so repeated portfolio
// requests between refresh runs do not hit the provider again.
type Cache struct {
	c   *ristretto.Cache
	ttl time.Duration
}

// NewCache creates a quote cache. maxEntries bounds the number of cached
// quotes; ttl bounds how long a quote is served before it must be refetched.
func NewCache(maxEntries int64, ttl time.Duration) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quote cache: %w", err)
	}
	return &Cache{c: c, ttl: ttl}, nil
}

// Get returns the cached quote for a ticker, if present and unexpired.
func (c *Cache) Get(ticker string) (model.Quote, bool) {
	v, ok := c.c.Get(ticker)
	if !ok {
		return model.Quote{}, false
	}
	return v.(model.Quote), true
}

// Set stores a quote under its ticker.
func (c *Cache) Set(q model.Quote) {
	c.c.SetWithTTL(q.Ticker, q, 1, c.ttl)
	// Ristretto applies sets asynchronously; Wait makes the quote visible to
	// the next Get, which the refresh job depends on.
	c.c.Wait()
}

// Clear drops all cached quotes.
func (c *Cache) Clear() {
	c.c.Clear()
}
