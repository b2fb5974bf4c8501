package store

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// Storages bundles every repository backed by the server's PostgreSQL
// database.
type Storages struct {
	Document DocumentRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// wires the server repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting to database")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		Document: NewDocumentRepository(db, log),
		db:       db,
	}, nil
}

// DB exposes the underlying connection for health checks.
func (s *Storages) DB() *DB {
	return s.db
}

// Close closes the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
