// Package jobs runs the background quote refresh schedule.
package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
)

// QuoteRefresher periodically re-fetches quotes for every ticker in the
// operation log so the portfolio endpoint serves warm prices.
type QuoteRefresher struct {
	cron             *cron.Cron
	operationService *service.OperationService
	quoteService     *service.QuoteService
}

// NewQuoteRefresher creates a refresher over the given services.
func NewQuoteRefresher(operationService *service.OperationService, quoteService *service.QuoteService) *QuoteRefresher {
	return &QuoteRefresher{
		cron:             cron.New(),
		operationService: operationService,
		quoteService:     quoteService,
	}
}

// Start schedules the refresh with the given cron spec (e.g. "@every 1m")
// and runs one refresh immediately so the cache is warm at startup.
func (j *QuoteRefresher) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.RefreshOnce); err != nil {
		return err
	}
	j.RefreshOnce()
	j.cron.Start()
	return nil
}

// Stop halts the schedule. In-flight refreshes are left to finish.
func (j *QuoteRefresher) Stop() {
	j.cron.Stop()
}

// RefreshOnce re-fetches quotes for all distinct tickers in the log.
func (j *QuoteRefresher) RefreshOnce() {
	tickers, err := j.operationService.GetDistinctTickers()
	if err != nil {
		log.Printf("quote refresh skipped: %v", err)
		return
	}
	if len(tickers) == 0 {
		return
	}

	fetched := j.quoteService.Refresh(context.Background(), tickers)
	log.Printf("refreshed quotes for %d/%d tickers", len(fetched), len(tickers))
}
