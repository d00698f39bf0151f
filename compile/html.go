package compile

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/jswierad/guidecrawl"
	"github.com/yuin/goldmark"
)

// documentStyle is the embedded stylesheet for the standalone HTML document.
// Styling stays minimal; presentation beyond readable defaults is the
// reader's concern.
const documentStyle = `
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Helvetica Neue', Arial, sans-serif;
  line-height: 1.6;
  color: #1d1d1f;
  max-width: 900px;
  margin: 0 auto;
  padding: 20px;
}
header { text-align: center; padding: 40px 0; border-bottom: 2px solid #e5e5e5; }
.toc { background: #f9f9f9; padding: 20px; margin: 20px 0; border-radius: 5px; }
.toc ul { list-style: none; padding-left: 0; }
.toc li { margin: 6px 0; }
.toc li.level-1 { margin-left: 15px; font-size: 0.95em; }
.toc li.level-2 { margin-left: 30px; font-size: 0.9em; }
.toc li.level-3 { margin-left: 45px; font-size: 0.9em; }
.page-meta { margin-bottom: 20px; padding: 10px; background: #f0f0f0; border-radius: 5px; }
.page-meta small { color: #666; }
a { color: #0066cc; text-decoration: none; }
a:hover { text-decoration: underline; }
code {
  background: #f4f4f4;
  padding: 2px 6px;
  border-radius: 4px;
  font-family: 'Menlo', 'Monaco', monospace;
  font-size: 0.9em;
}
pre { background: #f8f8f8; padding: 15px; border-radius: 5px; overflow-x: auto; }
pre code { background: none; padding: 0; }
.section-divider { border: none; border-top: 2px solid #e5e5e5; margin: 40px 0; }
`

// HTML compiles the page collection into a standalone hyperlinked HTML
// document. The table of contents links to per-page anchors; each page body
// is produced from the page's block markdown by goldmark and wrapped in an
// article element carrying the anchor id.
func HTML(title, baseURL string, pages []*guidecrawl.Page) (string, error) {
	md := goldmark.New()

	var toc strings.Builder
	toc.WriteString(`<nav class="toc"><h2>Table of Contents</h2><ul>` + "\n")
	for _, page := range pages {
		fmt.Fprintf(&toc, `<li class="level-%d"><a href="#%s">%s</a></li>`+"\n",
			page.Level, guidecrawl.Slugify(page.Title), html.EscapeString(page.Title))
	}
	toc.WriteString("</ul></nav>\n")

	var content strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&content, `<article id=%q class="page-section">`+"\n", guidecrawl.Slugify(page.Title))
		fmt.Fprintf(&content, "<h2>%s</h2>\n", html.EscapeString(page.Title))
		fmt.Fprintf(&content, `<div class="page-meta"><small>Source: <a href=%q>%s</a></small></div>`+"\n",
			page.URL, html.EscapeString(page.URL))

		var body bytes.Buffer
		if err := md.Convert([]byte(page.Markdown()), &body); err != nil {
			return "", guidecrawl.Errorf(guidecrawl.EINTERNAL, "failed to render page %d: %v", page.Index, err)
		}
		content.Write(body.Bytes())

		content.WriteString("</article>\n")
		content.WriteString(`<hr class="section-divider"/>` + "\n")
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString(`<meta charset="UTF-8">` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	fmt.Fprintf(&sb, "<title>%s - Complete Documentation</title>\n", html.EscapeString(title))
	fmt.Fprintf(&sb, "<style>%s</style>\n", documentStyle)
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString("<header>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(&sb, "<p>Complete Documentation - %d Pages</p>\n", len(pages))
	fmt.Fprintf(&sb, "<p><small>Source: <a href=%q>%s</a></small></p>\n", baseURL, html.EscapeString(baseURL))
	sb.WriteString("</header>\n")
	sb.WriteString(toc.String())
	sb.WriteString("<main>\n")
	sb.WriteString(content.String())
	sb.WriteString("</main>\n</body>\n</html>\n")

	return sb.String(), nil
}
