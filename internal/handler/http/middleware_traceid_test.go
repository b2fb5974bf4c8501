package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDMiddleware_GeneratesID(t *testing.T) {
	handler := &Handler{logger: logger.Nop()}
	probe := handler.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(traceIDHeader), "a trace id must be generated when the request carries none")
}

func TestTraceIDMiddleware_PropagatesInboundID(t *testing.T) {
	handler := &Handler{logger: logger.Nop()}
	probe := handler.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	r.Header.Set(traceIDHeader, "trace-123")
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	assert.Equal(t, "trace-123", w.Header().Get(traceIDHeader))
}
