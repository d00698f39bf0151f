package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jswierad/guidecrawl"
	"golang.org/x/net/html"
)

// DefaultNavigationSelectors is the prioritized list of navigation-container
// selectors scanned for documentation links.
var DefaultNavigationSelectors = []string{
	"nav.localnav",
	`nav[role="navigation"]`,
	"aside.sidebar",
	"div.topics",
	"div.table-of-contents",
	"ul.toc",
	"nav#sections",
	"div#sections",
	"aside#sections",
}

// nextSelectors matches sequential "next page" links by relation attribute
// or class convention.
const nextSelectors = `a[rel="next"], a.next, a.pagination-next`

// contentLinkSelectors matches in-content links, used in addition to
// navigation containers so sites without a sidebar still get traversed.
const contentLinkSelectors = "main a[href], article a[href]"

// Ensure Discoverer implements guidecrawl.LinkDiscoverer at compile time.
var _ guidecrawl.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer extracts candidate documentation links from raw page HTML.
// It operates on the original markup, before boilerplate removal: the
// navigation regions that the extractor discards are the primary link
// source for traversal.
type Discoverer struct {
	pathPrefix   string
	navSelectors []string
}

// DiscovererOption configures a Discoverer.
type DiscovererOption func(*Discoverer)

// WithNavigationSelectors overrides the navigation-container selector list.
func WithNavigationSelectors(selectors ...string) DiscovererOption {
	return func(d *Discoverer) {
		d.navSelectors = selectors
	}
}

// NewDiscoverer creates a Discoverer scoped to URLs whose path contains
// pathPrefix (e.g. "/guide/shortcuts/").
func NewDiscoverer(pathPrefix string, opts ...DiscovererOption) *Discoverer {
	d := &Discoverer{
		pathPrefix:   pathPrefix,
		navSelectors: DefaultNavigationSelectors,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover parses rawHTML and returns qualifying link tasks in document
// order. Links are deduplicated within the page by first occurrence; global
// deduplication against visited URLs is the frontier's job.
func (d *Discoverer) Discover(rawHTML string, currentURL string) ([]guidecrawl.PageTask, error) {
	base, err := url.Parse(currentURL)
	if err != nil {
		return nil, guidecrawl.Errorf(guidecrawl.EINVALID, "invalid current URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, guidecrawl.Errorf(guidecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var tasks []guidecrawl.PageTask

	add := func(sel *goquery.Selection, fallbackTitle string, level int) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !d.qualifies(base, resolved) {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = fallbackTitle
		}

		tasks = append(tasks, guidecrawl.PageTask{
			URL:   resolved,
			Title: title,
			Level: level,
		})
	}

	// Navigation containers first: they define the guide's hierarchy.
	for _, selector := range d.navSelectors {
		doc.Find(selector).Each(func(_ int, nav *goquery.Selection) {
			nav.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
				add(a, "Untitled", AncestorListDepth(a, nav))
			})
		})
	}

	// Sequential "next page" markers.
	doc.Find(nextSelectors).Each(func(_ int, a *goquery.Selection) {
		add(a, "Next Page", 1)
	})

	// In-content links, for pages whose navigation is absent or incomplete.
	doc.Find(contentLinkSelectors).Each(func(_ int, a *goquery.Selection) {
		add(a, "Untitled", 1)
	})

	return tasks, nil
}

// qualifies reports whether a resolved URL belongs to the crawl scope:
// same host as the current page, path containing the crawl prefix, and not
// the current page itself.
func (d *Discoverer) qualifies(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	if u.Host != base.Host {
		return false
	}
	if d.pathPrefix != "" && !strings.Contains(u.Path, d.pathPrefix) {
		return false
	}
	return true
}

// AncestorListDepth counts the list-container elements (ul, ol) between a
// link and its nearest navigation-root ancestor. The count becomes the
// task's hierarchy level, used purely for presentational indentation in
// compiled output; it has no effect on traversal order.
func AncestorListDepth(link *goquery.Selection, root *goquery.Selection) int {
	if len(link.Nodes) == 0 {
		return 0
	}
	var stop *html.Node
	if root != nil && len(root.Nodes) > 0 {
		stop = root.Nodes[0]
	}

	depth := 0
	for n := link.Nodes[0].Parent; n != nil && n != stop; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "ul", "ol":
			depth++
		case "nav":
			return depth
		}
	}
	return depth
}

// resolveURL resolves a relative href against the current page URL.
// Fragments are stripped for deduplication. Returns empty for unparseable
// hrefs and for self-referential links (anchor-only links to the same page).
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if resolved.String() == baseNoFragment.String() {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink reports whether a href is a non-HTTP link to skip.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
