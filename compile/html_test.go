package compile_test

import (
	"strings"
	"testing"

	"github.com/jswierad/guidecrawl"
	"github.com/jswierad/guidecrawl/compile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_StandaloneDocument(t *testing.T) {
	t.Parallel()

	doc, err := compile.HTML("Shortcuts Guide", "https://example.com/guide/welcome", testPages())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Shortcuts Guide - Complete Documentation</title>")
	assert.Contains(t, doc, "<style>")
	assert.Contains(t, doc, "Complete Documentation - 3 Pages")
}

func TestHTML_TOCLinksResolveToArticles(t *testing.T) {
	t.Parallel()

	pages := testPages()
	doc, err := compile.HTML("Shortcuts Guide", "https://example.com", pages)

	require.NoError(t, err)
	for _, page := range pages {
		slug := guidecrawl.Slugify(page.Title)
		assert.Contains(t, doc, `href="#`+slug+`"`, "TOC link for %q", page.Title)
		assert.Contains(t, doc, `<article id="`+slug+`"`, "article anchor for %q", page.Title)
	}
}

func TestHTML_RendersBlockContent(t *testing.T) {
	t.Parallel()

	doc, err := compile.HTML("Shortcuts Guide", "https://example.com", testPages())

	require.NoError(t, err)
	assert.Contains(t, doc, "<p>Intro paragraph.</p>")
	assert.Contains(t, doc, "<li>Open the app</li>")
}

func TestHTML_EscapesTitles(t *testing.T) {
	t.Parallel()

	pages := []*guidecrawl.Page{
		{Index: 0, URL: "https://example.com/a", Title: "Tips & Tricks <beta>"},
	}

	doc, err := compile.HTML("Shortcuts Guide", "https://example.com", pages)

	require.NoError(t, err)
	assert.Contains(t, doc, "Tips &amp; Tricks &lt;beta&gt;")
	assert.NotContains(t, doc, "<beta>")
}

func TestPDFDocument_WrapsAggregateMarkdown(t *testing.T) {
	t.Parallel()

	doc, err := compile.PDFDocument("Shortcuts Guide", "https://example.com", testPages())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "@page")
	assert.Contains(t, doc, "Shortcuts Guide - Complete Documentation")
	assert.Contains(t, doc, "<p>Intro paragraph.</p>")
}
