package service

import (
	"errors"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
)

var (
	// ErrRemoteDisabled is what Sync returns when no remote connection
	// string is configured. It is the adapter's sentinel re-exported so
	// that engine callers do not need to import the transport package.
	ErrRemoteDisabled = adapter.ErrRemoteDisabled

	// ErrVersionIsNotSpecified is returned when the app info service is
	// constructed without a build version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrEmptyDocumentID is returned by the document service when an
	// operation targets an empty document id.
	ErrEmptyDocumentID = errors.New("document id is required")
)
