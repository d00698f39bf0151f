// Package slog provides logging decorators for the guidecrawl service
// interfaces using the standard structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jswierad/guidecrawl"
)

// Ensure LoggingFetcher implements guidecrawl.Fetcher.
var _ guidecrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every fetch with its outcome.
type LoggingFetcher struct {
	next   guidecrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next guidecrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingRenderingFetcher implements guidecrawl.RenderingFetcher.
var _ guidecrawl.RenderingFetcher = (*LoggingRenderingFetcher)(nil)

// LoggingRenderingFetcher wraps a RenderingFetcher and logs every render.
type LoggingRenderingFetcher struct {
	next   guidecrawl.RenderingFetcher
	logger *slog.Logger
}

// NewLoggingRenderingFetcher creates a new LoggingRenderingFetcher.
func NewLoggingRenderingFetcher(next guidecrawl.RenderingFetcher, logger *slog.Logger) *LoggingRenderingFetcher {
	return &LoggingRenderingFetcher{next: next, logger: logger}
}

// Render delegates to the wrapped fetcher and logs the operation.
func (f *LoggingRenderingFetcher) Render(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("render",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Render(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingRenderingFetcher) Close() error {
	return f.next.Close()
}
