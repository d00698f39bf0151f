package goquery_test

import (
	"testing"

	gq "github.com/jswierad/guidecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_prefers_main_content_landmark(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Page - Site</title></head><body>
		<nav><a href="/other">Other</a></nav>
		<main><h1>Run a shortcut</h1><p>Tap the shortcut to run it.</p></main>
		<footer>footer text</footer>
	</body></html>`

	e := gq.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Run a shortcut", result.Title)
	assert.Contains(t, result.ContentHTML, "Tap the shortcut to run it.")
	assert.NotContains(t, result.ContentHTML, "footer text")
}

func TestExtractor_Extract_removes_deny_listed_boilerplate(t *testing.T) {
	t.Parallel()

	html := `<html><body><main>
		<h1>Intro</h1>
		<p>Real content.</p>
		<nav>sidebar links</nav>
		<div class="breadcrumb">Home &gt; Guide</div>
		<div class="feedback">Was this helpful?</div>
		<script>console.log("x")</script>
	</main></body></html>`

	e := gq.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Real content.")
	assert.NotContains(t, result.ContentHTML, "sidebar links")
	assert.NotContains(t, result.ContentHTML, "Was this helpful?")
	assert.NotContains(t, result.ContentHTML, "console.log")
}

func TestExtractor_Extract_falls_back_to_body(t *testing.T) {
	t.Parallel()

	html := `<html><body><h1>No landmarks</h1><p>Body-only page.</p></body></html>`

	e := gq.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "No landmarks", result.Title)
	assert.Contains(t, result.ContentHTML, "Body-only page.")
}

func TestExtractor_Extract_title_falls_back_to_document_title(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Create shortcuts — Apple Support</title></head>
		<body><main><p>content</p></main></body></html>`

	e := gq.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Create shortcuts", result.Title)
}

func TestExtractor_Extract_title_truncates_at_hyphen_separator(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Welcome - Shortcuts Guide</title></head>
		<body><main><p>content</p></main></body></html>`

	e := gq.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Welcome", result.Title)
}

func TestExtractor_Extract_untitled_fallback(t *testing.T) {
	t.Parallel()

	html := `<html><body><main><p>anonymous content</p></main></body></html>`

	e := gq.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Untitled", result.Title)
}

func TestExtractor_Extract_empty_markup_is_not_fatal(t *testing.T) {
	t.Parallel()

	e := gq.NewExtractor()
	result, err := e.Extract("")

	require.NoError(t, err)
	assert.Equal(t, "Untitled", result.Title)
	assert.Empty(t, result.ContentHTML)
}

func TestExtractor_Extract_boilerplate_only_page_yields_empty_content(t *testing.T) {
	t.Parallel()

	html := `<html><body><main><nav>only navigation here</nav></main></body></html>`

	e := gq.NewExtractor()
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Empty(t, result.ContentHTML)
}

func TestExtractor_Extract_deny_list_is_configurable(t *testing.T) {
	t.Parallel()

	html := `<html><body><main><p>keep</p><div class="promo">remove me</div></main></body></html>`

	e := gq.NewExtractor(gq.WithDenySelectors(".promo"))
	result, err := e.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "keep")
	assert.NotContains(t, result.ContentHTML, "remove me")
}
