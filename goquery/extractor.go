// Package goquery implements content extraction, normalization, and link
// discovery over parsed HTML using CSS selectors.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jswierad/guidecrawl"
	"golang.org/x/net/html"
)

// DefaultContentSelectors is the prioritized list of selectors tried to
// locate a page's main content region. The first non-empty match wins; if
// none match, the entire body is used.
var DefaultContentSelectors = []string{
	"main#main",
	"main",
	"article",
	`div[role="main"]`,
	"div.content",
	"div#main-content",
	"div.article-content",
	"div#content",
}

// DefaultDenySelectors is the deny-list of structural roles removed from the
// located content region before normalization. Site markup drifts over time,
// so the list is configurable via WithDenySelectors.
var DefaultDenySelectors = []string{
	"nav",
	"header",
	"footer",
	"aside",
	"script",
	"style",
	"iframe",
	"noscript",
	"button",
	"form",
	".advertisement",
	".ads",
	".social-share",
	".breadcrumb",
	".feedback",
	".related-links",
}

// Ensure Extractor implements guidecrawl.Extractor at compile time.
var _ guidecrawl.Extractor = (*Extractor)(nil)

// Extractor locates the main content region of a page, strips boilerplate
// elements, and resolves the page title.
type Extractor struct {
	contentSelectors []string
	denySelectors    []string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithContentSelectors overrides the prioritized content selector list.
func WithContentSelectors(selectors ...string) ExtractorOption {
	return func(e *Extractor) {
		e.contentSelectors = selectors
	}
}

// WithDenySelectors overrides the boilerplate deny-list.
func WithDenySelectors(selectors ...string) ExtractorOption {
	return func(e *Extractor) {
		e.denySelectors = selectors
	}
}

// NewExtractor creates a new Extractor with the default selector lists.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		contentSelectors: DefaultContentSelectors,
		denySelectors:    DefaultDenySelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the cleaned main content plus the
// resolved title. Empty or boilerplate-only pages yield an empty ContentHTML,
// never an error: boilerplate-only pages are expected at the edges of a crawl.
func (e *Extractor) Extract(rawHTML string) (*guidecrawl.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &guidecrawl.ExtractResult{Title: "Untitled"}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, guidecrawl.Errorf(guidecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	title := resolveTitle(doc)

	var content *goquery.Selection
	for _, selector := range e.contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			content = sel
			break
		}
	}
	if content == nil {
		content = doc.Find("body").First()
	}
	if content.Length() == 0 {
		return &guidecrawl.ExtractResult{Title: title}, nil
	}

	// Boilerplate removal happens before normalization: it defines what
	// "content" means downstream. The extractor parses its own copy of the
	// markup, so the discoverer still sees the navigation regions.
	for _, selector := range e.denySelectors {
		content.Find(selector).Remove()
	}

	if strings.TrimSpace(content.Text()) == "" && content.Find("pre, code, img").Length() == 0 {
		return &guidecrawl.ExtractResult{Title: title}, nil
	}

	contentHTML, err := renderSelection(content)
	if err != nil {
		return nil, guidecrawl.Errorf(guidecrawl.EINTERNAL, "failed to render content: %v", err)
	}

	return &guidecrawl.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

// resolveTitle resolves the page title: first h1, then the document title
// truncated at the first em-dash or hyphen to strip site-name suffixes, then
// the literal "Untitled". Exactly one of these always yields a result.
func resolveTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}

	t := doc.Find("title").First().Text()
	if idx := strings.Index(t, "—"); idx != -1 {
		t = t[:idx]
	}
	if idx := strings.Index(t, "-"); idx != -1 {
		t = t[:idx]
	}
	if t = strings.TrimSpace(t); t != "" {
		return t
	}

	return "Untitled"
}

// renderSelection converts a selection's nodes back to an HTML string.
func renderSelection(sel *goquery.Selection) (string, error) {
	var buf bytes.Buffer
	for _, node := range sel.Nodes {
		if err := html.Render(&buf, node); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
