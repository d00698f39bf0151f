package guidecrawl

import "context"

// PDFRenderer converts a compiled HTML document into PDF bytes. It is a
// boundary collaborator: the core hands over a well-formed document and has
// no responsibility for the rendering mechanism. Render failures are logged
// and the run still reports success for the artifacts already produced.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)

	// Close releases renderer resources.
	Close() error
}
