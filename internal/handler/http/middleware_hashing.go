package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/internal/app"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// hashHeader carries the hex HMAC-SHA256 signature of the request body.
// It must match the header the client adapter sets on every signed write.
const hashHeader = "HashSHA256"

// withBodyHash verifies the integrity signature of a write request. The
// body is decoded as an expense document and re-marshalled before hashing,
// so the comparison is over the canonical encoding rather than the raw
// bytes: key order and whitespace differences do not break verification.
//
// The middleware is a no-op when no body-hash key is configured.
func (h *Handler) withBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.bodyHashKey) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		signature := r.Header.Get(hashHeader)
		if signature == "" {
			log.Err(ErrMissingBodyHash).Str("func", "*Handler.withBodyHash").Send()
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withBodyHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body for the downstream handler
		r.Body = io.NopCloser(bytes.NewReader(body))

		var document models.ExpenseDocument
		if err := json.Unmarshal(body, &document); err != nil {
			log.Err(err).Str("func", "*Handler.withBodyHash").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		payload, err := json.Marshal(document)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withBodyHash").Msg("failed to marshal document")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		computed := hex.EncodeToString(utils.Hash(payload))
		if !hmac.Equal([]byte(computed), []byte(signature)) {
			log.Err(ErrBodyHashMismatch).Str("func", "*Handler.withBodyHash").
				Str("hash from request", signature).
				Str("hashed body", computed).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
