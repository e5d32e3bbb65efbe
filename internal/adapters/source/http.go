package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	maxBodyBytes       = 8 << 20
	userAgent          = "betcast/1.0"
)

// PublishedSheetURL returns the CSV export URL of a published sheet tab.
// sheetID is the path segment after /d/, including the "e/" prefix of
// published documents.
func PublishedSheetURL(sheetID, gid string) string {
	if sheetID == "" {
		return ""
	}
	if gid == "" {
		gid = "0"
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/pub?gid=%s&single=true&output=csv",
		sheetID, url.QueryEscape(gid))
}

// HTTP fetches sheet text with a GET request, optionally through a proxy
// that takes the target URL appended to its own.
type HTTP struct {
	url         string
	proxyPrefix string
	client      *http.Client
}

// NewHTTP creates an HTTP source for sheetURL.
func NewHTTP(sheetURL string, opts ...HTTPOption) *HTTP {
	h := &HTTP{
		url:    sheetURL,
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Kind reports KindHTTP.
func (h *HTTP) Kind() string { return KindHTTP }

// Target is the URL actually requested.
func (h *HTTP) Target() string { return h.proxyPrefix + h.url }

// Fetch performs the request. Any non-2xx status is an error.
func (h *HTTP) Fetch(ctx context.Context) (string, error) {
	if h.url == "" {
		return "", ErrNoLocation
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Target(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return "", fmt.Errorf("%w: over %d bytes", ErrTooLarge, maxBodyBytes)
	}
	return string(body), nil
}

// HTTPOption configures an HTTP source.
type HTTPOption func(*HTTP)

// WithProxyPrefix prepends prefix verbatim to the sheet URL.
func WithProxyPrefix(prefix string) HTTPOption {
	return func(h *HTTP) {
		h.proxyPrefix = prefix
	}
}

// WithTimeout bounds the whole request.
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		if d > 0 {
			h.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the client. Its timeout is kept as is.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTP) {
		if c != nil {
			h.client = c
		}
	}
}
