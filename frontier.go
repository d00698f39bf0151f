package guidecrawl

import "context"

// Frontier manages the crawl queue with visited-set deduplication.
type Frontier interface {
	// Push adds a task to the frontier. The visited check and insertion are
	// a single atomic operation: Push returns false if the URL has already
	// been seen, so a URL is admitted at most once per crawl.
	Push(task PageTask) bool

	// Pop returns the next task in breadth-first (FIFO) order.
	// Returns false if the frontier is empty.
	Pop() (PageTask, bool)

	// Len returns the number of queued tasks.
	Len() int

	// Seen returns true if the URL has been processed or enqueued.
	Seen(url string) bool
}

// Limiter bounds the aggregate request rate of a crawl. One shared limiter
// guards all workers; per-worker independent delays would not honor the
// target site's load tolerance.
type Limiter interface {
	// Wait blocks until the rate limit allows the next request.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
