package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
)

// OperationRepository provides data access methods for the operation table.
type OperationRepository struct {
	db *sql.DB
}

// NewOperationRepository creates a new OperationRepository with the provided database connection.
func NewOperationRepository(db *sql.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

// GetOperations retrieves the full operation log in insertion order
// (created_at, then id as a stable fallback for identical timestamps).
// The aggregator relies on this ordering for its same-date tie-break.
func (r *OperationRepository) GetOperations() ([]model.Operation, error) {
	query := `
		SELECT id, ticker, date, type, quantity, price, brokerage, other_fees, created_at
		FROM operation
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation table: %w", err)
	}
	defer rows.Close()

	return scanOperations(rows)
}

// GetOperationHistory retrieves operations ordered newest first for display.
func (r *OperationRepository) GetOperationHistory() ([]model.Operation, error) {
	query := `
		SELECT id, ticker, date, type, quantity, price, brokerage, other_fees, created_at
		FROM operation
		ORDER BY date DESC, created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation table: %w", err)
	}
	defer rows.Close()

	return scanOperations(rows)
}

func scanOperations(rows *sql.Rows) ([]model.Operation, error) {
	operations := []model.Operation{}

	for rows.Next() {
		var dateStr, createdAtStr string
		var op model.Operation

		err := rows.Scan(
			&op.ID,
			&op.Ticker,
			&dateStr,
			&op.Type,
			&op.Quantity,
			&op.Price,
			&op.Brokerage,
			&op.OtherFees,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation table results: %w", err)
		}

		op.Date, err = ParseTime(dateStr)
		if err != nil || op.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		op.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || op.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		operations = append(operations, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operation table: %w", err)
	}

	return operations, nil
}

// GetDistinctTickers returns the unique tickers in the operation log, sorted.
func (r *OperationRepository) GetDistinctTickers() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT ticker FROM operation ORDER BY ticker ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct tickers: %w", err)
	}
	defer rows.Close()

	tickers := []string{}
	for rows.Next() {
		var ticker string
		if err := rows.Scan(&ticker); err != nil {
			return nil, fmt.Errorf("failed to scan ticker: %w", err)
		}
		tickers = append(tickers, ticker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickers: %w", err)
	}

	return tickers, nil
}

// InsertOperation stores a new operation record.
func (r *OperationRepository) InsertOperation(ctx context.Context, op *model.Operation) error {
	query := `
		INSERT INTO operation (id, ticker, date, type, quantity, price, brokerage, other_fees, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		op.ID,
		op.Ticker,
		op.Date.Format("2006-01-02"),
		op.Type,
		op.Quantity,
		op.Price,
		op.Brokerage,
		op.OtherFees,
		op.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}

	return nil
}

// DeleteOperation removes an operation by ID.
// Returns apperrors.ErrOperationNotFound if no row matched.
func (r *OperationRepository) DeleteOperation(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM operation WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrOperationNotFound
	}

	return nil
}

const timeFormat = "2006-01-02T15:04:05Z07:00"
