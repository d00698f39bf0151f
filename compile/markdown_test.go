package compile_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jswierad/guidecrawl"
	"github.com/jswierad/guidecrawl/compile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPages() []*guidecrawl.Page {
	return []*guidecrawl.Page{
		{
			Index: 0,
			URL:   "https://example.com/guide/welcome",
			Title: "Welcome",
			Level: 0,
			Blocks: []guidecrawl.ContentBlock{
				{Kind: guidecrawl.BlockParagraph, Text: "Intro paragraph."},
			},
		},
		{
			Index: 1,
			URL:   "https://example.com/guide/create",
			Title: "Create a Shortcut",
			Level: 1,
			Blocks: []guidecrawl.ContentBlock{
				{Kind: guidecrawl.BlockHeading, Level: 2, Text: "Steps"},
				{Kind: guidecrawl.BlockListItem, Text: "Open the app"},
				{Kind: guidecrawl.BlockListItem, Text: "Tap plus"},
			},
		},
		{
			Index:  2,
			URL:    "https://example.com/guide/empty",
			Title:  "Empty Page",
			Level:  1,
			Blocks: nil,
		},
	}
}

func TestMarkdown_Header(t *testing.T) {
	t.Parallel()

	doc := compile.Markdown("Shortcuts Guide", "https://example.com/guide/welcome", testPages())

	assert.True(t, strings.HasPrefix(doc, "# Shortcuts Guide - Complete Documentation\n\n"))
	assert.Contains(t, doc, "Downloaded from: https://example.com/guide/welcome\n")
	assert.Contains(t, doc, "Total pages: 3\n")
}

func TestMarkdown_TOCAnchorsMatchPageAnchors(t *testing.T) {
	t.Parallel()

	pages := testPages()
	doc := compile.Markdown("Shortcuts Guide", "https://example.com", pages)

	for _, page := range pages {
		slug := guidecrawl.Slugify(page.Title)
		assert.Contains(t, doc, fmt.Sprintf("[%s](#%s)", page.Title, slug),
			"TOC entry for %q", page.Title)
		assert.Contains(t, doc, fmt.Sprintf("<div id=%q></div>", slug),
			"anchor for %q", page.Title)
	}
}

func TestMarkdown_TOCIndentsByLevel(t *testing.T) {
	t.Parallel()

	doc := compile.Markdown("Shortcuts Guide", "https://example.com", testPages())

	assert.Contains(t, doc, "- [Welcome](#welcome)\n")
	assert.Contains(t, doc, "  - [Create a Shortcut](#create-a-shortcut)\n")
}

func TestMarkdown_EmptyPageStillListed(t *testing.T) {
	t.Parallel()

	doc := compile.Markdown("Shortcuts Guide", "https://example.com", testPages())

	// Zero-block pages keep their TOC entry and body section.
	assert.Contains(t, doc, "- [Empty Page](#empty-page)\n")
	assert.Contains(t, doc, "## Empty Page\n")
}

func TestMarkdown_SourceCitations(t *testing.T) {
	t.Parallel()

	doc := compile.Markdown("Shortcuts Guide", "https://example.com", testPages())

	assert.Contains(t, doc, "_Source: [https://example.com/guide/create](https://example.com/guide/create)_")
}

func TestMarkdown_PagesInAcceptanceOrder(t *testing.T) {
	t.Parallel()

	doc := compile.Markdown("Shortcuts Guide", "https://example.com", testPages())

	welcome := strings.Index(doc, "## Welcome")
	create := strings.Index(doc, "## Create a Shortcut")
	empty := strings.Index(doc, "## Empty Page")

	require.True(t, welcome >= 0 && create >= 0 && empty >= 0)
	assert.Less(t, welcome, create)
	assert.Less(t, create, empty)
}
