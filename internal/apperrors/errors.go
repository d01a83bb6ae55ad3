package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrOperationNotFound indicates that an operation with the given ID does not exist.
	ErrOperationNotFound = errors.New("operation not found")

	// ErrDividendNotFound indicates that a dividend record with the given ID does not exist.
	ErrDividendNotFound = errors.New("dividend not found")

	// ErrQuoteNotFound indicates that no quote is available for a ticker.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrSettingNotFound indicates that a settings key has not been stored.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidTicker indicates that a ticker is empty or malformed.
	ErrInvalidTicker = errors.New("ticker is required")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveOperations = errors.New("failed to retrieve operations")
	ErrFailedToRetrieveDividends  = errors.New("failed to retrieve dividends")
	ErrFailedToRetrieveQuotes     = errors.New("failed to retrieve quotes")
	ErrFailedToBuildPortfolio     = errors.New("failed to build portfolio")
)
