// Package crawl provides guide crawling orchestration: the frontier, the
// shared rate limiter, fetch retry, and the scheduler that turns a seed URL
// into an ordered page collection.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/jswierad/guidecrawl"
	"golang.org/x/sync/errgroup"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Crawler defaults.
const (
	// DefaultMaxPages bounds the number of pages accepted into the collection.
	DefaultMaxPages = 100
	// DefaultSeedTitle is the title hint for the seed task; the extractor
	// overrides it once the page is fetched.
	DefaultSeedTitle = "Welcome"
)

// Crawler orchestrates a breadth-first traversal of a documentation guide.
// Workers fetch; a single coordinator accepts pages and assigns indices, so
// the collection order is strictly increasing and gapless.
type Crawler struct {
	Fetcher    guidecrawl.Fetcher
	Renderer   guidecrawl.RenderingFetcher // optional fallback for pages the plain fetch cannot handle
	Extractor  guidecrawl.Extractor
	Normalizer guidecrawl.Normalizer
	Links      guidecrawl.LinkDiscoverer
	Limiter    guidecrawl.Limiter

	MaxPages    int // page budget; DefaultMaxPages when <= 0
	Concurrency int // worker count; 1 when <= 0
	RetryDelays []time.Duration
	SeedTitle   string
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	URL       string
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// fetchResult holds the outcome of fetching a single task.
type fetchResult struct {
	task guidecrawl.PageTask
	html string
	err  error
}

// Run crawls the guide starting at baseURL and returns the accepted pages in
// acceptance order. Fetch failures are skipped and do not consume budget.
// Context cancellation stops new dispatches, drains in-flight work, and
// returns the partial collection with a nil error so compilation can proceed.
func (c *Crawler) Run(ctx context.Context, baseURL string, progress ProgressFunc) ([]*guidecrawl.Page, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, guidecrawl.Errorf(guidecrawl.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	seedTitle := c.SeedTitle
	if seedTitle == "" {
		seedTitle = DefaultSeedTitle
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(guidecrawl.PageTask{
		URL:   baseURL,
		Title: seedTitle,
	})

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, URL: baseURL})
	}

	workCh := make(chan guidecrawl.PageTask, concurrency)
	resultCh := make(chan fetchResult)

	done := make(chan struct{})
	var g errgroup.Group
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for task := range workCh {
				result := c.fetchTask(ctx, task)
				select {
				case resultCh <- result:
				case <-done:
					return nil
				}
			}
			return nil
		})
	}

	var pages []*guidecrawl.Page
	failed := 0
	pending := 0
	var nextTask *guidecrawl.PageTask

	if task, ok := frontier.Pop(); ok {
		nextTask = &task
	}

coordinatorLoop:
	for {
		if nextTask == nil && pending == 0 {
			break coordinatorLoop
		}

		if ctx.Err() != nil {
			break coordinatorLoop
		}

		// The budget gate counts accepted plus in-flight pages, so the
		// collection can never overshoot maxPages even when every in-flight
		// fetch succeeds.
		if nextTask != nil && len(pages)+pending < maxPages {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *nextTask:
				pending++
				nextTask = nil
			case result := <-resultCh:
				pending--
				c.acceptResult(&result, &pages, frontier, &failed, progress)
			}
		} else if pending > 0 {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case result := <-resultCh:
				pending--
				c.acceptResult(&result, &pages, frontier, &failed, progress)
			}
		} else {
			// Budget exhausted and nothing in flight.
			break coordinatorLoop
		}

		if nextTask == nil {
			if task, ok := frontier.Pop(); ok {
				nextTask = &task
			}
		}
	}

	close(workCh)

	// Drain in-flight results so cancellation still yields the pages that
	// finished fetching.
	drainTimeout := time.After(5 * time.Second)
drainLoop:
	for pending > 0 {
		select {
		case result := <-resultCh:
			pending--
			c.acceptResult(&result, &pages, frontier, &failed, progress)
		case <-drainTimeout:
			break drainLoop
		}
	}
	close(done)
	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(pages)})
	}

	return pages, nil
}

// fetchTask fetches a single task on the worker side: rate limit, fetch with
// retry, then the one-shot rendering fallback when configured.
func (c *Crawler) fetchTask(ctx context.Context, task guidecrawl.PageTask) fetchResult {
	result := fetchResult{task: task}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, task.URL, c.Fetcher.Fetch, nil, delays)
	if err != nil && c.Renderer != nil && ctx.Err() == nil {
		html, err = c.Renderer.Render(ctx, task.URL)
	}
	if err != nil {
		result.err = err
		return result
	}

	result.html = html
	return result
}

// acceptResult runs on the coordinator only. It assigns the page index at the
// moment of acceptance and discovers follow-up links from the raw markup,
// before boilerplate removal.
func (c *Crawler) acceptResult(result *fetchResult, pages *[]*guidecrawl.Page, frontier *Frontier, failed *int, progress ProgressFunc) {
	fail := func(err error) {
		*failed++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: len(*pages),
				URL:       result.task.URL,
				Error:     err,
			})
		}
	}

	if result.err != nil {
		fail(result.err)
		return
	}

	extracted, err := c.Extractor.Extract(result.html)
	if err != nil {
		fail(err)
		return
	}

	// Empty content is a valid page with zero blocks, not a failure.
	var blocks []guidecrawl.ContentBlock
	if extracted.ContentHTML != "" {
		blocks, err = c.Normalizer.Normalize(extracted.ContentHTML)
		if err != nil {
			fail(err)
			return
		}
	}

	title := extracted.Title
	if title == "" || title == "Untitled" {
		if result.task.Title != "" {
			title = result.task.Title
		} else {
			title = "Untitled"
		}
	}

	markdown := guidecrawl.BlocksToMarkdown(blocks)
	page := &guidecrawl.Page{
		Index:       len(*pages),
		URL:         result.task.URL,
		Title:       title,
		Level:       result.task.Level,
		Blocks:      blocks,
		RawHTML:     extracted.ContentHTML,
		ContentHash: computeHash(markdown),
	}
	*pages = append(*pages, page)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: len(*pages),
			URL:       page.URL,
			Title:     page.Title,
		})
	}

	if c.Links == nil {
		return
	}
	tasks, err := c.Links.Discover(result.html, result.task.URL)
	if err != nil {
		return
	}
	for _, task := range tasks {
		frontier.Push(task)
	}
}
