package service

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type documentService struct {
	documents store.DocumentRepository

	logger *logger.Logger
}

// NewDocumentService builds the plain repository-backed service. Callers
// normally wrap it with [NewDocumentValidationWrapper].
func NewDocumentService(documents store.DocumentRepository, log *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		logger:    log,
	}
}

func (d *documentService) Insert(ctx context.Context, clientID string, document models.ExpenseDocument) error {
	return d.documents.Insert(ctx, clientID, document)
}

func (d *documentService) Update(ctx context.Context, clientID string, id string, document models.ExpenseDocument) error {
	// the path id is authoritative; the body may carry a stale one
	document.ID = id
	return d.documents.Update(ctx, clientID, id, document)
}

func (d *documentService) Remove(ctx context.Context, id string) error {
	return d.documents.Remove(ctx, id)
}

func (d *documentService) FindByID(ctx context.Context, id string) (models.ExpenseDocument, error) {
	return d.documents.FindByID(ctx, id)
}

func (d *documentService) FindAll(ctx context.Context, filter models.DocumentFilter) ([]models.ExpenseDocument, error) {
	return d.documents.FindAll(ctx, filter)
}
