// Package http provides an HTTP-based implementation of cratedoc.Fetcher
// for retrieving pre-rendered documentation pages from docs.rs.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/cratedoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the tool to docs.rs.
const userAgent = "cratedoc (+https://github.com/fwojciec/cratedoc)"

// Ensure Fetcher implements cratedoc.Fetcher at compile time.
var _ cratedoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs with a single blocking GET.
// docs.rs serves fully rendered pages, so no JavaScript execution is needed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// A 404 response maps to ENOTFOUND; other non-200 responses are EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", cratedoc.Errorf(cratedoc.ENOTFOUND, "documentation not found at %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", cratedoc.Errorf(cratedoc.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
