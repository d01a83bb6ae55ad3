package model

import "time"

// Operation types accepted in the operation log.
const (
	OperationBuy  = "buy"
	OperationSell = "sell"
)

// Operation represents a buy or sell recorded against a ticker.
// Operations are append-only: once created they are never edited, only
// explicitly deleted.
type Operation struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Brokerage float64   `json:"brokerage"`
	OtherFees float64   `json:"otherFees"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
