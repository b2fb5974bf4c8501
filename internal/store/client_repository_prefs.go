package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// Well-known preference keys.
const (
	// PrefClientID stores the generated client identity used as the JWT
	// subject on every remote call.
	PrefClientID = "client_id"

	// PrefDarkMode stores the UI palette choice ("true" / "false").
	PrefDarkMode = "dark_mode"
)

type prefsRepository struct {
	*DB
}

// NewPrefsRepository returns the SQLite-backed implementation of
// [PrefsRepository].
func NewPrefsRepository(db *DB) PrefsRepository {
	return &prefsRepository{DB: db}
}

func (r *prefsRepository) Set(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, setPrefQuery, key, value); err != nil {
		log.Err(err).Str("func", "prefsRepository.Set").Str("key", key).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *prefsRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.DB.QueryRowContext(ctx, getPrefQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPrefNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "prefsRepository.Get").Str("key", key).Msg("error scanning row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}
