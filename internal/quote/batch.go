package quote

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
)

// FetchAll looks up prices for every ticker concurrently, one task per
// ticker. A failed lookup drops that ticker from the result and does not
// cancel the siblings; the map always reflects whatever settled
// successfully. The returned map is ready for the aggregator.
func FetchAll(ctx context.Context, source Source, tickers []string) map[string]model.Quote {
	quotes := make(map[string]model.Quote, len(tickers))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	for _, ticker := range tickers {
		ticker := ticker
		g.Go(func() error {
			price, err := source.FetchPrice(ctx, ticker)
			if err != nil {
				// Degrade this ticker to "no quote"; the batch carries on.
				log.Printf("quote lookup failed for %s: %v", ticker, err)
				return nil
			}

			mu.Lock()
			quotes[ticker] = model.Quote{Ticker: ticker, Price: price, AsOf: time.Now().UTC()}
			mu.Unlock()
			return nil
		})
	}

	// Tasks never return errors, so Wait only synchronizes the batch.
	_ = g.Wait()

	return quotes
}
