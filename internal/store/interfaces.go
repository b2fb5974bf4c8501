package store

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository is the server-side expense document collection.
// Documents are keyed by the client-generated id; clientID records which
// client instance performed the last write.
type DocumentRepository interface {
	// Insert stores a new document. Returns [ErrDocumentExists] when the
	// id is already taken.
	Insert(ctx context.Context, clientID string, document models.ExpenseDocument) error

	// Update replaces the document with the given id. Returns
	// [ErrDocumentNotFound] when the collection has no such id.
	Update(ctx context.Context, clientID string, id string, document models.ExpenseDocument) error

	// Remove deletes the document with the given id. Returns
	// [ErrDocumentNotFound] when the collection has no such id.
	Remove(ctx context.Context, id string) error

	// FindByID returns the document with the given id, or
	// [ErrDocumentNotFound].
	FindByID(ctx context.Context, id string) (models.ExpenseDocument, error)

	// FindAll returns the documents matching the filter, oldest insert
	// first. The zero filter returns the whole collection.
	FindAll(ctx context.Context, filter models.DocumentFilter) ([]models.ExpenseDocument, error)
}
