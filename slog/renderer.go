package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jswierad/guidecrawl"
)

// Ensure LoggingPDFRenderer implements guidecrawl.PDFRenderer.
var _ guidecrawl.PDFRenderer = (*LoggingPDFRenderer)(nil)

// LoggingPDFRenderer wraps a PDFRenderer and logs render outcomes.
type LoggingPDFRenderer struct {
	next   guidecrawl.PDFRenderer
	logger *slog.Logger
}

// NewLoggingPDFRenderer creates a new LoggingPDFRenderer.
func NewLoggingPDFRenderer(next guidecrawl.PDFRenderer, logger *slog.Logger) *LoggingPDFRenderer {
	return &LoggingPDFRenderer{next: next, logger: logger}
}

// RenderPDF delegates to the wrapped renderer and logs the operation.
func (r *LoggingPDFRenderer) RenderPDF(ctx context.Context, html string) (data []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render pdf",
			"input_bytes", len(html),
			"output_bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderPDF(ctx, html)
}

// Close delegates to the wrapped renderer.
func (r *LoggingPDFRenderer) Close() error {
	return r.next.Close()
}
