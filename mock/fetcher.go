// Package mock provides function-field mock implementations of the
// guidecrawl service interfaces for testing.
package mock

import (
	"context"

	"github.com/jswierad/guidecrawl"
)

var _ guidecrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of guidecrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ guidecrawl.RenderingFetcher = (*RenderingFetcher)(nil)

// RenderingFetcher is a mock implementation of guidecrawl.RenderingFetcher.
type RenderingFetcher struct {
	RenderFn func(ctx context.Context, url string) (string, error)
	CloseFn  func() error
}

func (f *RenderingFetcher) Render(ctx context.Context, url string) (string, error) {
	return f.RenderFn(ctx, url)
}

func (f *RenderingFetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
