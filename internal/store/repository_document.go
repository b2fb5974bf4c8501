// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/jackc/pgerrcode"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It executes all collection operations directly
// against the "documents" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert stores a new document in the collection.
//
// A unique-violation from the driver is translated to [ErrDocumentExists]
// so callers can map the duplicate to an HTTP conflict without inspecting
// driver error codes themselves.
func (p *documentRepository) Insert(ctx context.Context, clientID string, document models.ExpenseDocument) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(document)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Insert").
			Str("document_id", document.ID).
			Msg("failed to encode document")
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	_, err = p.DB.ExecContext(ctx, insertDocumentQuery, document.ID, clientID, string(payload))
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrDocumentExists
		}
		log.Err(err).
			Str("func", "documentRepository.Insert").
			Str("document_id", document.ID).
			Str("client_id", clientID).
			Msg("failed to execute insert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Update replaces the stored document and stamps the writing client.
func (p *documentRepository) Update(ctx context.Context, clientID string, id string, document models.ExpenseDocument) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(document)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("document_id", id).
			Msg("failed to encode document")
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	result, err := p.DB.ExecContext(ctx, updateDocumentQuery, string(payload), clientID, id)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("document_id", id).
			Str("client_id", clientID).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("document_id", id).
			Msg("failed to get number of affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// Remove deletes the document with the given id.
func (p *documentRepository) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, removeDocumentQuery, id)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Remove").
			Str("document_id", id).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Remove").
			Str("document_id", id).
			Msg("failed to get number of affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// FindByID returns the single document with the given id.
func (p *documentRepository) FindByID(ctx context.Context, id string) (models.ExpenseDocument, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	err := p.DB.QueryRowContext(ctx, findDocumentByIDQuery, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ExpenseDocument{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.FindByID").
			Str("document_id", id).
			Msg("failed to scan row")
		return models.ExpenseDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var document models.ExpenseDocument
	if err := json.Unmarshal(payload, &document); err != nil {
		log.Err(err).
			Str("func", "documentRepository.FindByID").
			Str("document_id", id).
			Msg("failed to decode document")
		return models.ExpenseDocument{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return document, nil
}

// FindAll returns the documents matching the filter.
//
// Filtering is optional: the zero filter scans the whole collection, which
// is what a client reconciliation pass requests.
func (p *documentRepository) FindAll(ctx context.Context, filter models.DocumentFilter) ([]models.ExpenseDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.FindAll").
			Int("ids count", len(filter.IDs)).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.FindAll").
			Int("ids count", len(filter.IDs)).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.ExpenseDocument, 0, 50)

	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			log.Err(err).
				Str("func", "documentRepository.FindAll").
				Msg("failed to scan rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var document models.ExpenseDocument
		if err := json.Unmarshal(payload, &document); err != nil {
			log.Err(err).
				Str("func", "documentRepository.FindAll").
				Msg("failed to decode document")
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
		}

		documents = append(documents, document)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "documentRepository.FindAll").
			Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}
