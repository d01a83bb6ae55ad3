package model

import "time"

// Dividend represents a cash payout received for a ticker.
// The Type field carries the payout subtype ("dividend", "jcp", "rendimento").
type Dividend struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
