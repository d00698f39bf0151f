package mock

import (
	"context"

	"github.com/jswierad/guidecrawl"
)

var _ guidecrawl.PDFRenderer = (*PDFRenderer)(nil)

// PDFRenderer is a mock implementation of guidecrawl.PDFRenderer.
type PDFRenderer struct {
	RenderPDFFn func(ctx context.Context, html string) ([]byte, error)
	CloseFn     func() error
}

func (r *PDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	return r.RenderPDFFn(ctx, html)
}

func (r *PDFRenderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
