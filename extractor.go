package guidecrawl

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the resolved page title. Resolution order: first top-level
	// heading, then document title metadata truncated at the first em-dash
	// or hyphen separator, then the literal "Untitled". Never empty.
	Title string

	// ContentHTML is the located main-content region with boilerplate
	// (navigation, header, footer, scripts, ads) removed. Empty when the
	// page yields no content; an empty result is valid, not an error.
	ContentHTML string
}

// Extractor locates the main content region of a page and strips boilerplate.
// Boilerplate removal happens here, before normalization; it defines what
// "content" means downstream.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Normalizer converts cleaned content HTML into the ordered sequence of
// typed content blocks consumed by every output renderer.
type Normalizer interface {
	Normalize(contentHTML string) ([]ContentBlock, error)
}
