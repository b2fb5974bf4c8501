package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type pendingDeleteRepository struct {
	*DB
}

// NewPendingDeleteRepository returns the SQLite-backed implementation of
// [PendingDeleteRepository].
func NewPendingDeleteRepository(db *DB) PendingDeleteRepository {
	return &pendingDeleteRepository{DB: db}
}

func (r *pendingDeleteRepository) Add(ctx context.Context, id string, deletedAt time.Time) error {
	log := logger.FromContext(ctx)

	// ON CONFLICT DO NOTHING keeps the first deletion time when the same
	// id is deleted twice before a reconciliation pass runs.
	_, err := r.DB.ExecContext(ctx, addPendingDeleteQuery, id, deletedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		log.Err(err).Str("func", "pendingDeleteRepository.Add").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *pendingDeleteRepository) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, removePendingDeleteQuery, id); err != nil {
		log.Err(err).Str("func", "pendingDeleteRepository.Remove").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *pendingDeleteRepository) Contains(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.DB.QueryRowContext(ctx, containsPendingDeleteQuery, id).Scan(&exists); err != nil {
		log.Err(err).Str("func", "pendingDeleteRepository.Contains").Msg("error scanning row")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return exists, nil
}

func (r *pendingDeleteRepository) List(ctx context.Context) ([]models.PendingDelete, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listPendingDeletesQuery)
	if err != nil {
		log.Err(err).Str("func", "pendingDeleteRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tombstones []models.PendingDelete
	for rows.Next() {
		var (
			id        string
			deletedAt string
		)
		if err := rows.Scan(&id, &deletedAt); err != nil {
			log.Err(err).Str("func", "pendingDeleteRepository.List").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		ts, err := time.Parse(time.RFC3339Nano, deletedAt)
		if err != nil {
			log.Err(err).Str("func", "pendingDeleteRepository.List").Msg("error parsing deletion time")
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
		}

		tombstones = append(tombstones, models.PendingDelete{ID: id, DeletedAt: ts})
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "pendingDeleteRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tombstones, nil
}
