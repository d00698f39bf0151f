// Package http provides an HTTP-based implementation of guidecrawl.Fetcher
// for fetching documentation pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jswierad/guidecrawl"
)

// DefaultFetchTimeout is the per-attempt timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent is a browser-identifying User-Agent. Documentation hosts
// reject obvious bot agents, so requests present as a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements guidecrawl.Fetcher at compile time.
var _ guidecrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript; pages that need rendering go through the
// rod-based fallback instead.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher. The underlying client reuses
// connections across requests for the lifetime of the Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. A single attempt is
// made; retry with backoff is owned by the crawl scheduler.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", guidecrawl.Errorf(guidecrawl.EINVALID, "invalid fetch URL %q: %v", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", guidecrawl.Errorf(guidecrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
