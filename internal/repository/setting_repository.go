package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
)

// Settings keys used by the application.
const (
	SettingQuoteAPIToken = "quote_api_token"
)

// SettingRepository provides data access methods for the setting table,
// a small key-value store for runtime configuration.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the stored value for a key.
// Returns apperrors.ErrSettingNotFound if the key has never been set.
func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := r.db.QueryRowContext(ctx, `SELECT value FROM setting WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting table: %w", err)
	}

	return value, nil
}

// Set stores or replaces the value for a key.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO setting (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}
