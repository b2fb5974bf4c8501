package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authProbe wires the auth middleware in front of a handler that records
// the client id propagated through the request context.
func authProbe(t *testing.T) (*Handler, *string, http.Handler) {
	t.Helper()
	keyring, err := crypto.NewKeyringService("test-shared-secret")
	require.NoError(t, err)

	handler := NewHandler(nil, keyring, testIssuer, logger.Nop())

	var gotClientID string
	probe := handler.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientID, _ = utils.GetClientIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	return handler, &gotClientID, probe
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	_, gotClientID, probe := authProbe(t)

	keyring, err := crypto.NewKeyringService("test-shared-secret")
	require.NoError(t, err)
	token, err := utils.GenerateJWTToken(testIssuer, "client-42", time.Hour, keyring.TokenSignKey())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	r.Header.Set("Authorization", "Bearer "+token.SignedString)
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "client-42", *gotClientID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	_, _, probe := authProbe(t)

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	_, _, probe := authProbe(t)

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	r.Header.Set("Authorization", "Bearer")
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	_, _, probe := authProbe(t)

	otherKeyring, err := crypto.NewKeyringService("a-different-secret")
	require.NoError(t, err)
	token, err := utils.GenerateJWTToken(testIssuer, "client-42", time.Hour, otherKeyring.TokenSignKey())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	r.Header.Set("Authorization", "Bearer "+token.SignedString)
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	_, _, probe := authProbe(t)

	keyring, err := crypto.NewKeyringService("test-shared-secret")
	require.NoError(t, err)
	token, err := utils.GenerateJWTToken(testIssuer, "client-42", time.Nanosecond, keyring.TokenSignKey())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	r.Header.Set("Authorization", "Bearer "+token.SignedString)
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongIssuer(t *testing.T) {
	_, _, probe := authProbe(t)

	keyring, err := crypto.NewKeyringService("test-shared-secret")
	require.NoError(t, err)
	token, err := utils.GenerateJWTToken("some-other-issuer", "client-42", time.Hour, keyring.TokenSignKey())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	r.Header.Set("Authorization", "Bearer "+token.SignedString)
	w := httptest.NewRecorder()

	probe.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
