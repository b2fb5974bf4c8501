package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/go-resty/resty/v2"
)

// hashHeader carries the hex HMAC-SHA256 signature of the request body.
const hashHeader = "HashSHA256"

type httpRemoteCollection struct {
	cfg     config.ClientRemote
	hashKey []byte

	mu     sync.RWMutex
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPRemoteCollection constructs an HTTP/REST implementation of
// [RemoteCollection].
//
// The connection string is taken from cfg.URL but the underlying client is
// not built until the first call needs it; an empty connection string is a
// valid configuration that turns every call into [ErrRemoteDisabled].
// When hashKey is non-empty the shared HMAC hasher pool is initialised and
// every request body is signed with it.
func NewHTTPRemoteCollection(cfg config.ClientRemote, hashKey []byte, logger *logger.Logger) RemoteCollection {
	if len(hashKey) > 0 {
		utils.InitHasherPool(hashKey)
	}

	return &httpRemoteCollection{cfg: cfg, hashKey: hashKey, logger: logger}
}

// ensure returns the shared resty client, building it on first use.
// Subsequent calls reuse the same client and its connection pool.
func (h *httpRemoteCollection) ensure() (*utils.HTTPClient, error) {
	if strings.TrimSpace(h.cfg.URL) == "" {
		return nil, ErrRemoteDisabled
	}

	h.mu.RLock()
	client := h.client
	h.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.client != nil {
		return h.client, nil
	}

	baseURL, err := normalizeBaseURL(h.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote url: %w", err)
	}

	client = utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(h.cfg.RequestTimeout).
		SetRetryCount(h.cfg.RetryCount).
		SetRetryWaitTime(h.cfg.RetryWait).
		SetRetryMaxWaitTime(h.cfg.RetryMaxWait)

	h.logger.Debug().
		Str("func", "httpRemoteCollection.ensure").
		Str("base_url", baseURL).
		Int("retry_count", h.cfg.RetryCount).
		Msg("remote collection client connected")

	h.client = client
	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteCollection]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent authenticated requests.
func (h *httpRemoteCollection) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteCollection]. It returns the bearer token
// currently held by the adapter, or an empty string if none has been set.
func (h *httpRemoteCollection) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Insert implements [RemoteCollection]. It POSTs the signed document to
// POST /api/expenses. A duplicate id surfaces as [ErrConflict].
func (h *httpRemoteCollection) Insert(ctx context.Context, document models.ExpenseDocument) error {
	client, err := h.ensure()
	if err != nil {
		return err
	}

	resp, err := h.signedRequest(ctx, client, document).
		Post("/api/expenses")
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateByID implements [RemoteCollection]. It PUTs the signed document to
// PUT /api/expenses/{id}. An absent id surfaces as [ErrNotFound].
func (h *httpRemoteCollection) UpdateByID(ctx context.Context, id string, document models.ExpenseDocument) error {
	client, err := h.ensure()
	if err != nil {
		return err
	}

	resp, err := h.signedRequest(ctx, client, document).
		Put("/api/expenses/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveByID implements [RemoteCollection]. It sends
// DELETE /api/expenses/{id}. An absent id surfaces as [ErrNotFound]; the
// reconciliation pass treats that as an already-replayed delete.
func (h *httpRemoteCollection) RemoveByID(ctx context.Context, id string) error {
	client, err := h.ensure()
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx, client).
		Delete("/api/expenses/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}

	return mapHTTPError(resp)
}

// FindByID implements [RemoteCollection]. It GETs /api/expenses/{id} and
// reports a 404 as (zero, false, nil) rather than an error.
func (h *httpRemoteCollection) FindByID(ctx context.Context, id string) (models.ExpenseDocument, bool, error) {
	client, err := h.ensure()
	if err != nil {
		return models.ExpenseDocument{}, false, err
	}

	resp, err := h.authedRequest(ctx, client).
		Get("/api/expenses/" + url.PathEscape(id))
	if err != nil {
		return models.ExpenseDocument{}, false, fmt.Errorf("find request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.ExpenseDocument{}, false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExpenseDocument{}, false, err
	}

	var document models.ExpenseDocument
	if err = json.Unmarshal(resp.Body(), &document); err != nil {
		return models.ExpenseDocument{}, false, fmt.Errorf("decode find response: %w", err)
	}

	return document, true, nil
}

// FindAll implements [RemoteCollection]. It GETs the whole collection from
// GET /api/expenses and decodes it as a document slice.
func (h *httpRemoteCollection) FindAll(ctx context.Context) ([]models.ExpenseDocument, error) {
	client, err := h.ensure()
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx, client).
		Get("/api/expenses")
	if err != nil {
		return nil, fmt.Errorf("find all request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var documents []models.ExpenseDocument
	if err = json.Unmarshal(resp.Body(), &documents); err != nil {
		return nil, fmt.Errorf("decode find all response: %w", err)
	}

	return documents, nil
}

// Ping implements [RemoteCollection]. It GETs the unauthenticated /ping
// endpoint; the connectivity monitor uses it as its reachability probe.
func (h *httpRemoteCollection) Ping(ctx context.Context) error {
	client, err := h.ensure()
	if err != nil {
		return err
	}

	resp, err := client.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteCollection) authedRequest(ctx context.Context, client *utils.HTTPClient) *resty.Request {
	req := client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest prepares an authenticated JSON request carrying body and,
// when a hash key is configured, its integrity signature.
func (h *httpRemoteCollection) signedRequest(ctx context.Context, client *utils.HTTPClient, body any) *resty.Request {
	req := h.authedRequest(ctx, client).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if signature := h.signBody(body); signature != "" {
		req.SetHeader(hashHeader, signature)
	}
	return req
}

// signBody computes the transport integrity signature of v: the hex HMAC of
// its canonical JSON encoding. An empty hash key disables signing.
func (h *httpRemoteCollection) signBody(v any) string {
	if len(h.hashKey) == 0 {
		return ""
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}
