package store

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// ClientStorages bundles every repository backed by the client's local
// SQLite file.
type ClientStorages struct {
	Expense       ExpenseRepository
	PendingDelete PendingDeleteRepository
	Prefs         PrefsRepository

	db *DB
}

// NewClientStorages opens the local database and wires the client
// repositories on top of the shared connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.Local, log)
	if err != nil {
		log.Err(err).Str("func", "NewClientStorages").Msg("error connecting to local database")
		return nil, err
	}

	return &ClientStorages{
		Expense:       NewExpenseRepository(db),
		PendingDelete: NewPendingDeleteRepository(db),
		Prefs:         NewPrefsRepository(db),
		db:            db,
	}, nil
}

// Close closes the underlying database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
