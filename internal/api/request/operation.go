package request

// CreateOperationRequest represents the request body for recording a new
// buy or sell operation. Brokerage and otherFees default to zero when absent.
type CreateOperationRequest struct {
	Ticker    string  `json:"ticker"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Brokerage float64 `json:"brokerage,omitempty"`
	OtherFees float64 `json:"otherFees,omitempty"`
}
