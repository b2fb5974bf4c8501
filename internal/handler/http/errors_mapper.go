package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/internal/app"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyDocumentID:       http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	validators.ErrInvalidID:            http.StatusBadRequest,
	validators.ErrEmptyTitle:           http.StatusBadRequest,
	validators.ErrInvalidAmount:        http.StatusBadRequest,
	validators.ErrNegativeAmount:       http.StatusBadRequest,
	validators.ErrInvalidDate:          http.StatusBadRequest,
	validators.ErrInvalidPaymentMethod: http.StatusBadRequest,

	store.ErrDocumentExists:   http.StatusConflict,
	store.ErrDocumentNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrDecodingRecord:     http.StatusInternalServerError,
	store.ErrEncodingRecord:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError maps an error to the response body text. Client-caused
// failures echo the sentinel's message; everything else is reported as a
// generic internal error so no storage detail leaks to the transport.
func messageFromError(err error) string {
	switch statusFromError(err) {
	case http.StatusInternalServerError:
		return app.MsgInternalServerError
	case http.StatusConflict:
		return app.MsgDocumentExists
	case http.StatusNotFound:
		return app.MsgDocumentNotFound
	default:
		return err.Error()
	}
}
