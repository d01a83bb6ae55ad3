package request

// CreateDividendRequest represents the request body for recording a payout.
type CreateDividendRequest struct {
	Ticker string  `json:"ticker"`
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
}
