package service

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// documentValidationWrapper decorates a [DocumentService] with field
// validation: malformed documents are rejected before any repository call.
type documentValidationWrapper struct {
	validator validators.Validator
}

// NewDocumentValidationWrapper returns a [DocumentServiceWrapper] applying
// expense document validation in front of the wrapped service.
func NewDocumentValidationWrapper() DocumentServiceWrapper {
	return &documentValidationWrapper{validator: validators.NewExpenseValidator()}
}

// Wrap implements [DocumentServiceWrapper].
func (w *documentValidationWrapper) Wrap(next DocumentService) DocumentService {
	return &validatingDocumentService{next: next, validator: w.validator}
}

type validatingDocumentService struct {
	next      DocumentService
	validator validators.Validator
}

func (v *validatingDocumentService) Insert(ctx context.Context, clientID string, document models.ExpenseDocument) error {
	if document.ID == "" {
		return ErrEmptyDocumentID
	}
	if err := v.validator.Validate(ctx, document); err != nil {
		return err
	}
	return v.next.Insert(ctx, clientID, document)
}

func (v *validatingDocumentService) Update(ctx context.Context, clientID string, id string, document models.ExpenseDocument) error {
	if id == "" {
		return ErrEmptyDocumentID
	}
	if err := v.validator.Validate(ctx, document); err != nil {
		return err
	}
	return v.next.Update(ctx, clientID, id, document)
}

func (v *validatingDocumentService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyDocumentID
	}
	return v.next.Remove(ctx, id)
}

func (v *validatingDocumentService) FindByID(ctx context.Context, id string) (models.ExpenseDocument, error) {
	if id == "" {
		return models.ExpenseDocument{}, ErrEmptyDocumentID
	}
	return v.next.FindByID(ctx, id)
}

func (v *validatingDocumentService) FindAll(ctx context.Context, filter models.DocumentFilter) ([]models.ExpenseDocument, error) {
	return v.next.FindAll(ctx, filter)
}
