package store

import (
	"database/sql"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/migrations"
)

// DB wraps the raw database handle together with the pieces every
// repository needs: an error classificator for retry decisions (populated
// for PostgreSQL connections, nil for SQLite) and a fallback logger.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies pending schema migrations. Only the server's PostgreSQL
// database is goose-managed; the client's local schema is created inline
// when the connection is opened.
func (db *DB) Migrate() error {
	db.logger.Info().Str("func", "DB.Migrate").Msg("applying pending migrations")
	return migrations.Migrate(db.DB)
}

// Classify reports whether err is worth retrying against this database.
// Connections opened without a classificator treat every error as
// permanent.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
