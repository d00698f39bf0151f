// Package compile turns a crawled page collection into the output documents:
// aggregate markdown with a table of contents, a hyperlinked HTML document,
// per-page section files, and the HTML handed to the PDF renderer.
package compile

import (
	"fmt"
	"strings"

	"github.com/jswierad/guidecrawl"
)

// Markdown compiles the page collection into a single markdown document:
// a header with provenance, a table of contents indented by hierarchy level,
// then every page in acceptance order with an anchor, a source citation, and
// a horizontal rule. TOC links and page anchors share the Slugify contract,
// so every TOC entry resolves.
func Markdown(title, baseURL string, pages []*guidecrawl.Page) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s - Complete Documentation\n\n", title)
	fmt.Fprintf(&sb, "Downloaded from: %s\n\n", baseURL)
	fmt.Fprintf(&sb, "Total pages: %d\n\n", len(pages))
	sb.WriteString("---\n\n")

	sb.WriteString("## Table of Contents\n\n")
	for _, page := range pages {
		indent := strings.Repeat("  ", page.Level)
		fmt.Fprintf(&sb, "%s- [%s](#%s)\n", indent, page.Title, guidecrawl.Slugify(page.Title))
	}
	sb.WriteString("\n---\n\n")

	for _, page := range pages {
		fmt.Fprintf(&sb, "\n<div id=%q></div>\n\n", guidecrawl.Slugify(page.Title))
		fmt.Fprintf(&sb, "## %s\n\n", page.Title)
		fmt.Fprintf(&sb, "_Source: [%s](%s)_\n\n", page.URL, page.URL)
		sb.WriteString(page.Markdown())
		sb.WriteString("\n\n---\n\n")
	}

	return sb.String()
}
