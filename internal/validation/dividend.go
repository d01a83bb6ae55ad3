package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/request"
)

// ValidDividendType contains the allowed payout subtype labels.
var ValidDividendType = map[string]bool{
	"dividend": true, "jcp": true, "rendimento": true,
}

// ValidateCreateDividend validates a dividend creation request.
//
// Required fields:
//   - ticker: Must be non-empty
//   - date: Must be in YYYY-MM-DD format
//   - type: Must be one of: dividend, jcp, rendimento
//   - value: Must be positive
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateDividend(req request.CreateDividendRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["dividendType"] = "type is required"
	} else if !ValidDividendType[req.Type] {
		errors["dividendType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Value <= 0.0 {
		errors["value"] = "value must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
