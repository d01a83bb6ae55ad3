package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
)

// DividendRepository provides data access methods for the dividend table.
type DividendRepository struct {
	db *sql.DB
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// GetDividends retrieves all payouts ordered newest first.
func (r *DividendRepository) GetDividends() ([]model.Dividend, error) {
	query := `
		SELECT id, ticker, date, type, value, created_at
		FROM dividend
		ORDER BY date DESC, created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend table: %w", err)
	}
	defer rows.Close()

	dividends := []model.Dividend{}

	for rows.Next() {
		var dateStr, createdAtStr string
		var d model.Dividend

		err := rows.Scan(&d.ID, &d.Ticker, &dateStr, &d.Type, &d.Value, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dividend table results: %w", err)
		}

		d.Date, err = ParseTime(dateStr)
		if err != nil || d.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		d.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || d.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		dividends = append(dividends, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend table: %w", err)
	}

	return dividends, nil
}

// GetDividendTotal returns the sum of all payout values.
func (r *DividendRepository) GetDividendTotal() (float64, error) {
	var total sql.NullFloat64

	err := r.db.QueryRow(`SELECT SUM(value) FROM dividend`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum dividends: %w", err)
	}
	if !total.Valid {
		return 0, nil
	}

	return total.Float64, nil
}

// InsertDividend stores a new payout record.
func (r *DividendRepository) InsertDividend(ctx context.Context, d *model.Dividend) error {
	query := `
		INSERT INTO dividend (id, ticker, date, type, value, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Ticker,
		d.Date.Format("2006-01-02"),
		d.Type,
		d.Value,
		d.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dividend: %w", err)
	}

	return nil
}

// DeleteDividend removes a payout by ID.
// Returns apperrors.ErrDividendNotFound if no row matched.
func (r *DividendRepository) DeleteDividend(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dividend WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dividend: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDividendNotFound
	}

	return nil
}
