package service

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService is the server-side business layer over the expense
// document collection.
type DocumentService interface {
	// Insert stores a new document for clientID. Returns
	// [store.ErrDocumentExists] when the id is already taken.
	Insert(ctx context.Context, clientID string, document models.ExpenseDocument) error

	// Update replaces the document with the given id. Returns
	// [store.ErrDocumentNotFound] when the collection has no such id.
	Update(ctx context.Context, clientID string, id string, document models.ExpenseDocument) error

	// Remove deletes the document with the given id. Returns
	// [store.ErrDocumentNotFound] when the collection has no such id.
	Remove(ctx context.Context, id string) error

	// FindByID returns one document, or [store.ErrDocumentNotFound].
	FindByID(ctx context.Context, id string) (models.ExpenseDocument, error)

	// FindAll returns the documents matching the filter; the zero filter
	// selects the whole collection.
	FindAll(ctx context.Context, filter models.DocumentFilter) ([]models.ExpenseDocument, error)
}

// AppInfoService reports build-time metadata.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// DocumentServiceWrapper defines middleware composition for
// DocumentService. Implementations wrap an existing DocumentService to add
// behavior such as validation or logging.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}
