package rod

import (
	"context"
	"io"

	"github.com/go-rod/rod/lib/proto"
	"github.com/jswierad/guidecrawl"
)

// Ensure Renderer implements guidecrawl.PDFRenderer at compile time.
var _ guidecrawl.PDFRenderer = (*Renderer)(nil)

// Renderer prints compiled HTML documents to PDF through headless Chrome.
// The crawl core treats it as a boundary collaborator: it hands over a
// well-formed HTML document and receives PDF bytes.
type Renderer struct {
	browser *browser
}

// NewRenderer creates a Renderer backed by a freshly launched headless
// Chrome. Close must be called when the Renderer is no longer needed.
func NewRenderer() (*Renderer, error) {
	b, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	return &Renderer{browser: b}, nil
}

// RenderPDF loads the HTML document into a blank page and prints it.
func (r *Renderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	page, err := r.browser.b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
	})
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.browser.close()
}
