package service

import (
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// Services bundles every server-side service.
type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

// NewServices wires the server services on top of the storages. The
// document service is wrapped with validation so handlers never reach the
// repository with a malformed document.
func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, log *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, log)
	if err != nil {
		return nil, err
	}

	documents := NewDocumentValidationWrapper().Wrap(NewDocumentService(storages.Document, log))

	return &Services{
		DocumentService: documents,
		AppInfoService:  appInfo,
	}, nil
}
