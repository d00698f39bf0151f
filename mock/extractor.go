package mock

import "github.com/jswierad/guidecrawl"

var _ guidecrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of guidecrawl.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*guidecrawl.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*guidecrawl.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ guidecrawl.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of guidecrawl.Normalizer.
type Normalizer struct {
	NormalizeFn func(contentHTML string) ([]guidecrawl.ContentBlock, error)
}

func (n *Normalizer) Normalize(contentHTML string) ([]guidecrawl.ContentBlock, error) {
	return n.NormalizeFn(contentHTML)
}
