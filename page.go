package guidecrawl

// PageTask is a unit of crawl work: a candidate URL queued by the link
// discoverer and consumed by the scheduler. Tasks are ephemeral; they are
// discarded once fetched or skipped.
type PageTask struct {
	URL   string
	Title string // suggested title from the link text; the extractor may override it
	Level int    // hierarchy depth hint, presentational only
}

// Page is the canonical per-page record produced by the crawl. Index is
// assigned monotonically at the moment the page is accepted into the result
// collection; it is never reused and defines final document ordering. Pages
// are immutable after acceptance.
type Page struct {
	Index       int
	URL         string
	Title       string
	Level       int
	Blocks      []ContentBlock
	RawHTML     string // cleaned main-content fragment backing the HTML compiler
	ContentHash string
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "page title required")
	}
	if p.Index < 0 {
		return Errorf(EINVALID, "page index must not be negative")
	}
	return nil
}

// Markdown renders the page's block sequence as markdown.
func (p *Page) Markdown() string {
	return BlocksToMarkdown(p.Blocks)
}
