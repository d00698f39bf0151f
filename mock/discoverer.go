package mock

import "github.com/jswierad/guidecrawl"

var _ guidecrawl.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of guidecrawl.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverFn func(html string, currentURL string) ([]guidecrawl.PageTask, error)
}

func (d *LinkDiscoverer) Discover(html string, currentURL string) ([]guidecrawl.PageTask, error) {
	return d.DiscoverFn(html, currentURL)
}
