package guidecrawl

import "context"

// Fetcher retrieves raw HTML from URLs over the lightweight path.
type Fetcher interface {
	// Fetch retrieves the markup at url. The URL must be absolute.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any connection or session resources.
	Close() error
}

// RenderingFetcher retrieves HTML from pages that require JavaScript
// rendering. Implementations wait for a defined readiness signal (the main
// content element appearing) plus a fixed settle delay before reading the
// rendered markup. The crawl core never depends on a specific browser
// automation mechanism beyond this interface.
type RenderingFetcher interface {
	// Render navigates to the URL, waits for the page to render,
	// and returns the rendered HTML.
	Render(ctx context.Context, url string) (html string, err error)

	// Close releases rendering engine resources.
	Close() error
}
