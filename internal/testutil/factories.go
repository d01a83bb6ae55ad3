package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
)

// MakeID returns a fresh UUID string for test records.
func MakeID() string {
	return uuid.New().String()
}

// clock hands out strictly increasing created_at timestamps so insertion
// order stays deterministic even when builders run in the same nanosecond.
var clock = time.Now()

func nextCreatedAt() time.Time {
	clock = clock.Add(time.Millisecond)
	return clock
}

// OperationBuilder provides a fluent interface for creating test operations.
//
// Example usage:
//
//	// Simple creation with defaults (a buy of 10 PETR4 at 30.00)
//	op := testutil.NewOperation().Build(t, db)
//
//	// Customized operation
//	op := testutil.NewOperation().
//	    WithTicker("VALE3").
//	    WithDate("2024-03-01").
//	    Sell().
//	    WithQuantity(5).
//	    WithPrice(61.20).
//	    Build(t, db)
type OperationBuilder struct {
	ID        string
	Ticker    string
	Date      string
	Type      string
	Quantity  float64
	Price     float64
	Brokerage float64
	OtherFees float64
}

// NewOperation creates an OperationBuilder with sensible defaults.
func NewOperation() *OperationBuilder {
	return &OperationBuilder{
		ID:       MakeID(),
		Ticker:   "PETR4",
		Date:     "2024-01-10",
		Type:     model.OperationBuy,
		Quantity: 10,
		Price:    30.00,
	}
}

// WithID sets a custom ID.
func (b *OperationBuilder) WithID(id string) *OperationBuilder {
	b.ID = id
	return b
}

// WithTicker sets a custom ticker.
func (b *OperationBuilder) WithTicker(ticker string) *OperationBuilder {
	b.Ticker = ticker
	return b
}

// WithDate sets a custom date in YYYY-MM-DD format.
func (b *OperationBuilder) WithDate(date string) *OperationBuilder {
	b.Date = date
	return b
}

// Buy marks the operation as a buy.
func (b *OperationBuilder) Buy() *OperationBuilder {
	b.Type = model.OperationBuy
	return b
}

// Sell marks the operation as a sell.
func (b *OperationBuilder) Sell() *OperationBuilder {
	b.Type = model.OperationSell
	return b
}

// WithQuantity sets a custom quantity.
func (b *OperationBuilder) WithQuantity(quantity float64) *OperationBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets a custom unit price.
func (b *OperationBuilder) WithPrice(price float64) *OperationBuilder {
	b.Price = price
	return b
}

// WithFees sets brokerage and other fees.
func (b *OperationBuilder) WithFees(brokerage, otherFees float64) *OperationBuilder {
	b.Brokerage = brokerage
	b.OtherFees = otherFees
	return b
}

// Build creates the operation in the database and returns it.
func (b *OperationBuilder) Build(t *testing.T, db *sql.DB) model.Operation {
	t.Helper()

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test operation date: %v", err)
	}
	createdAt := nextCreatedAt()

	query := `
		INSERT INTO operation (id, ticker, date, type, quantity, price, brokerage, other_fees, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query, b.ID, b.Ticker, b.Date, b.Type, b.Quantity, b.Price, b.Brokerage, b.OtherFees,
		createdAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	if err != nil {
		t.Fatalf("Failed to create test operation: %v", err)
	}

	return model.Operation{
		ID:        b.ID,
		Ticker:    b.Ticker,
		Date:      date,
		Type:      b.Type,
		Quantity:  b.Quantity,
		Price:     b.Price,
		Brokerage: b.Brokerage,
		OtherFees: b.OtherFees,
		CreatedAt: createdAt,
	}
}

// DividendBuilder provides a fluent interface for creating test payouts.
type DividendBuilder struct {
	ID     string
	Ticker string
	Date   string
	Type   string
	Value  float64
}

// NewDividend creates a DividendBuilder with sensible defaults.
func NewDividend() *DividendBuilder {
	return &DividendBuilder{
		ID:     MakeID(),
		Ticker: "PETR4",
		Date:   "2024-02-15",
		Type:   "dividend",
		Value:  12.34,
	}
}

// WithTicker sets a custom ticker.
func (b *DividendBuilder) WithTicker(ticker string) *DividendBuilder {
	b.Ticker = ticker
	return b
}

// WithDate sets a custom date in YYYY-MM-DD format.
func (b *DividendBuilder) WithDate(date string) *DividendBuilder {
	b.Date = date
	return b
}

// WithType sets the payout subtype.
func (b *DividendBuilder) WithType(dividendType string) *DividendBuilder {
	b.Type = dividendType
	return b
}

// WithValue sets the payout amount.
func (b *DividendBuilder) WithValue(value float64) *DividendBuilder {
	b.Value = value
	return b
}

// Build creates the dividend in the database and returns it.
func (b *DividendBuilder) Build(t *testing.T, db *sql.DB) model.Dividend {
	t.Helper()

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test dividend date: %v", err)
	}
	createdAt := nextCreatedAt()

	query := `
		INSERT INTO dividend (id, ticker, date, type, value, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query, b.ID, b.Ticker, b.Date, b.Type, b.Value,
		createdAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	if err != nil {
		t.Fatalf("Failed to create test dividend: %v", err)
	}

	return model.Dividend{
		ID:        b.ID,
		Ticker:    b.Ticker,
		Date:      date,
		Type:      b.Type,
		Value:     b.Value,
		CreatedAt: createdAt,
	}
}
