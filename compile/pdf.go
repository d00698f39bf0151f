package compile

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/jswierad/guidecrawl"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// printStyle is the print stylesheet for the PDF input document. Page breaks
// before top-level headings keep each crawled page on its own sheet.
const printStyle = `
@page { margin: 2.5cm; size: A4; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif;
  line-height: 1.8;
  color: #333;
  font-size: 11pt;
}
h1 { color: #000; border-bottom: 3px solid #ccc; padding-bottom: 0.5em; }
h2 { color: #333; border-bottom: 2px solid #ccc; padding-bottom: 0.3em; margin-top: 1.5em; page-break-before: always; }
h2:first-of-type { page-break-before: avoid; }
h3 { color: #555; margin-top: 1.2em; }
code {
  background: #f4f4f4;
  padding: 2px 6px;
  border-radius: 3px;
  font-family: 'Courier New', monospace;
  font-size: 10pt;
}
pre { background: #f8f8f8; padding: 15px; border-radius: 5px; overflow-x: auto; font-size: 9pt; }
pre code { background: none; padding: 0; }
a { color: #0066cc; text-decoration: none; }
`

// PDFDocument converts the aggregate markdown into the HTML document handed
// to the PDF renderer boundary. The renderer owns pagination; this side owns
// the content and the print stylesheet.
func PDFDocument(title, baseURL string, pages []*guidecrawl.Page) (string, error) {
	// The aggregate markdown carries raw anchor divs; they must survive the
	// conversion for intra-document links to work.
	md := goldmark.New(goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()))

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(title, baseURL, pages)), &body); err != nil {
		return "", guidecrawl.Errorf(guidecrawl.EINTERNAL, "failed to render document: %v", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&sb, "<style>%s</style>\n", printStyle)
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")

	return sb.String(), nil
}
