package compile

import (
	"fmt"

	"github.com/jswierad/guidecrawl"
)

// sectionSlugLen caps the slug portion of a section filename.
const sectionSlugLen = 50

// SectionFilename returns the per-page artifact name: a zero-padded page
// index followed by the slugged title, e.g. "007-create-a-shortcut.md".
// The index prefix keeps a directory listing in crawl order.
func SectionFilename(page *guidecrawl.Page) string {
	slug := guidecrawl.TruncateSlug(guidecrawl.Slugify(page.Title), sectionSlugLen)
	return fmt.Sprintf("%03d-%s.md", page.Index, slug)
}

// Section renders a single page as a standalone markdown file with a title
// header and source citation.
func Section(page *guidecrawl.Page) string {
	return fmt.Sprintf("# %s\n\nSource: %s\n\n---\n\n%s\n", page.Title, page.URL, page.Markdown())
}
