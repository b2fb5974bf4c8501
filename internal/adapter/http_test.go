// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHashKey = []byte("test-body-hash-key")

// newTestCollection builds a collection client pointed at the test server.
func newTestCollection(t *testing.T, serverURL string) RemoteCollection {
	t.Helper()
	cfg := config.ClientRemote{
		URL:            serverURL,
		RequestTimeout: 5 * time.Second,
	}
	return NewHTTPRemoteCollection(cfg, testHashKey, logger.Nop())
}

func testDocument() models.ExpenseDocument {
	return models.ExpenseDocument{
		ID:            "exp-1",
		Title:         "lunch",
		Amount:        json.Number("12.5"),
		Date:          "2026-03-14T12:30:00Z",
		Category:      "food",
		PaymentMethod: models.PaymentMethodCard,
		Synced:        true,
	}
}

// ── Disabled remote ─────────────────────────────────────────────────────────

func TestRemoteCollection_DisabledRemote(t *testing.T) {
	c := NewHTTPRemoteCollection(config.ClientRemote{}, nil, logger.Nop())
	ctx := context.Background()

	assert.ErrorIs(t, c.Insert(ctx, testDocument()), ErrRemoteDisabled)
	assert.ErrorIs(t, c.UpdateByID(ctx, "exp-1", testDocument()), ErrRemoteDisabled)
	assert.ErrorIs(t, c.RemoveByID(ctx, "exp-1"), ErrRemoteDisabled)
	assert.ErrorIs(t, c.Ping(ctx), ErrRemoteDisabled)

	_, _, err := c.FindByID(ctx, "exp-1")
	assert.ErrorIs(t, err, ErrRemoteDisabled)

	_, err = c.FindAll(ctx)
	assert.ErrorIs(t, err, ErrRemoteDisabled)
}

// ── Insert ──────────────────────────────────────────────────────────────────

func TestInsert_Success(t *testing.T) {
	doc := testDocument()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/expenses", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var got models.ExpenseDocument
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, doc, got)

		// the signature must match an HMAC of the canonical encoding
		payload, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Equal(t, utils.HashString(string(payload), testHashKey), r.Header.Get("HashSHA256"))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	c.SetToken("test-token")

	require.NoError(t, c.Insert(context.Background(), doc))
}

func TestInsert_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("document already exists"))
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	err := c.Insert(context.Background(), testDocument())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestInsert_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	err := c.Insert(context.Background(), testDocument())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── UpdateByID ──────────────────────────────────────────────────────────────

func TestUpdateByID_Success(t *testing.T) {
	doc := testDocument()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/expenses/exp-1", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("HashSHA256"))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	require.NoError(t, c.UpdateByID(context.Background(), "exp-1", doc))
}

func TestUpdateByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("document was not found"))
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	err := c.UpdateByID(context.Background(), "exp-1", testDocument())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── RemoveByID ──────────────────────────────────────────────────────────────

func TestRemoveByID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/expenses/exp-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	require.NoError(t, c.RemoveByID(context.Background(), "exp-1"))
}

func TestRemoveByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	err := c.RemoveByID(context.Background(), "exp-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── FindByID ────────────────────────────────────────────────────────────────

func TestFindByID_Success(t *testing.T) {
	want := testDocument()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/expenses/exp-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	got, found, err := c.FindByID(context.Background(), "exp-1")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestFindByID_Missing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	got, found, err := c.FindByID(context.Background(), "exp-1")

	require.NoError(t, err, "a missing document is not an error")
	assert.False(t, found)
	assert.Equal(t, models.ExpenseDocument{}, got)
}

func TestFindByID_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	_, found, err := c.FindByID(context.Background(), "exp-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.False(t, found)
}

// ── FindAll ─────────────────────────────────────────────────────────────────

func TestFindAll_Success(t *testing.T) {
	first := testDocument()
	second := testDocument()
	second.ID = "exp-2"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/expenses", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.ExpenseDocument{first, second})
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	got, err := c.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestFindAll_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	got, err := c.FindAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindAll_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	_, err := c.FindAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		// the probe carries no credentials
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	c.SetToken("test-token")

	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestCollection(t, srv.URL)
	err := c.Ping(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Token handling ──────────────────────────────────────────────────────────

func TestSetToken_TrimsWhitespace(t *testing.T) {
	c := NewHTTPRemoteCollection(config.ClientRemote{}, nil, logger.Nop())

	c.SetToken("  token-with-spaces  ")
	assert.Equal(t, "token-with-spaces", c.Token())
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func Test_normalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url kept", raw: "https://sync.example.net:8443/api", want: "https://sync.example.net:8443/api"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "scheme added when missing", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "empty input rejected", raw: "   ", wantErr: true},
		{name: "scheme without host rejected", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
