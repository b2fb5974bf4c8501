package connectivity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/utils"
)

// pingPath is the unauthenticated reachability endpoint exposed by the
// remote collection server.
const pingPath = "/ping"

// defaultProbeTimeout bounds a single probe when the caller supplied no
// timeout. A probe must fail fast: a hung probe would delay the offline
// verdict the engine relies on.
const defaultProbeTimeout = 3 * time.Second

type httpChecker struct {
	client  *utils.HTTPClient
	pingURL string
}

// NewHTTPChecker builds a [Checker] that GETs the remote ping endpoint.
// rawURL is the remote collection connection string; the probe address is
// derived from it. Returns [ErrInvalidProbeURL] when the address cannot be
// parsed.
func NewHTTPChecker(rawURL string, timeout time.Duration) (Checker, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidProbeURL)
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProbeURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: address must include host and scheme", ErrInvalidProbeURL)
	}

	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &httpChecker{
		client:  client,
		pingURL: strings.TrimRight(u.String(), "/") + pingPath,
	}, nil
}

// Check implements [Checker]. Transport-level failures are a clean offline
// verdict; only a cancelled context is reported as a check failure.
func (c *httpChecker) Check(ctx context.Context) (bool, error) {
	resp, err := c.client.R().SetContext(ctx).Get(c.pingURL)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}

	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices, nil
}
