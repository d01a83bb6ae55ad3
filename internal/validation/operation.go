package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/request"
	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
)

// ValidOperationType contains the allowed operation type values.
var ValidOperationType = map[string]bool{
	model.OperationBuy: true, model.OperationSell: true,
}

// ValidateCreateOperation validates an operation creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - ticker: Must be non-empty
//   - date: Must be in YYYY-MM-DD format
//   - type: Must be one of: buy, sell
//   - quantity: Must be positive
//   - price: Must be positive
//
// Optional fields:
//   - brokerage, otherFees: Must be non-negative (default zero)
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateOperation(req request.CreateOperationRequest) error {
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
		errors["operationType"] = "type is required"
	} else if !ValidOperationType[req.Type] {
		errors["operationType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price <= 0.0 {
		errors["price"] = "price must be positive"
	}

	if req.Brokerage < 0.0 {
		errors["brokerage"] = "brokerage cannot be negative"
	}

	if req.OtherFees < 0.0 {
		errors["otherFees"] = "otherFees cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
