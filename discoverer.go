package guidecrawl

// LinkDiscoverer scans a fetched page for candidate same-site documentation
// links. It must see the original markup, before boilerplate removal: the
// navigation regions the extractor discards for content purposes are the
// primary link source for traversal.
//
// Discoverers filter by host and crawl path prefix and deduplicate within a
// single page; global deduplication against already-visited URLs belongs to
// the frontier. Link order within one page's result is document order.
type LinkDiscoverer interface {
	Discover(html string, currentURL string) ([]PageTask, error)
}
