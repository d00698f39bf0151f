package crawl

import (
	"strings"
	"sync"

	"github.com/jswierad/guidecrawl"
	"github.com/jswierad/guidecrawl/bloom"
)

// Compile-time interface verification.
var _ guidecrawl.Frontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with Bloom filter deduplication.
// FIFO ordering gives the crawl its breadth-first shape. It is safe for
// concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []guidecrawl.PageTask
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a task to the tail of the queue.
// Returns false if the URL has already been seen. The seen-check and the
// insertion happen under one lock, so a URL is admitted at most once even
// under concurrent pushes.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(task guidecrawl.PageTask) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(task.URL)

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	task.URL = url
	f.queue = append(f.queue, task)
	return true
}

// Pop returns the next task in FIFO order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (guidecrawl.PageTask, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return guidecrawl.PageTask{}, false
	}
	task := f.queue[0]
	f.queue = f.queue[1:]
	return task, true
}

// Len returns the number of queued tasks.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
