// Package bloom provides the probabilistic visited-set used by the crawl
// frontier to deduplicate URLs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by normalized URL. False positives cause
// a URL to be skipped, never fetched twice, so the crawl's at-most-once
// invariant holds; the rate is sized to keep skips negligible.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been seen.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
