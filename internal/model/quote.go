package model

import "time"

// Quote is the latest known price for a ticker.
type Quote struct {
	Ticker string    `json:"ticker"`
	Price  float64   `json:"price"`
	AsOf   time.Time `json:"asOf"`
}
