// Package rod provides browser-backed implementations of
// guidecrawl.RenderingFetcher and guidecrawl.PDFRenderer using headless
// Chrome via go-rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jswierad/guidecrawl"
)

// DefaultRenderTimeout bounds the wait for the readiness selector.
const DefaultRenderTimeout = 10 * time.Second

// DefaultSettleDelay is the fixed wait after the readiness selector appears,
// giving asynchronous content time to land before the markup is read.
const DefaultSettleDelay = 2 * time.Second

// DefaultReadySelector is the element whose presence signals that the main
// content has rendered.
const DefaultReadySelector = "main"

// Ensure Fetcher implements guidecrawl.RenderingFetcher at compile time.
var _ guidecrawl.RenderingFetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// It is the fallback path for pages the lightweight HTTP fetcher cannot
// handle. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser       *browser
	readySelector string
	settleDelay   time.Duration
	timeout       time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithReadySelector sets the readiness selector. Defaults to "main".
func WithReadySelector(selector string) FetcherOption {
	return func(f *Fetcher) {
		f.readySelector = selector
	}
}

// WithSettleDelay sets the post-readiness settle delay. Defaults to 2s.
func WithSettleDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithRenderTimeout sets the readiness wait timeout. Defaults to 10s.
func WithRenderTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher backed by a freshly launched headless Chrome.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		readySelector: DefaultReadySelector,
		settleDelay:   DefaultSettleDelay,
		timeout:       DefaultRenderTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	b, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	f.browser = b

	return f, nil
}

// Render navigates to the URL, waits for the readiness selector plus the
// settle delay, and returns the rendered HTML.
func (f *Fetcher) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Timeout(f.timeout).Navigate(url); err != nil {
		return "", guidecrawl.Errorf(guidecrawl.EUNAVAILABLE, "render navigate %s: %v", url, err)
	}

	// Readiness signal: the main content element must appear within the
	// render timeout.
	if _, err := page.Timeout(f.timeout).Element(f.readySelector); err != nil {
		return "", guidecrawl.Errorf(guidecrawl.EUNAVAILABLE, "render wait %q on %s: %v", f.readySelector, url, err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(f.settleDelay):
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.close()
}

// browser owns one launched Chrome instance, shared by the rendering fetcher
// and the PDF renderer.
type browser struct {
	b *rod.Browser
	l *launcher.Launcher
}

// launchBrowser starts a headless Chrome instance with stability flags.
func launchBrowser() (*browser, error) {
	l := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &browser{b: b, l: l}, nil
}

func (br *browser) close() error {
	err := br.b.Close()
	br.l.Kill()
	return err
}
