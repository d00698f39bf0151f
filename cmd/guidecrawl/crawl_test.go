package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jswierad/guidecrawl/crawl"
	"github.com/jswierad/guidecrawl/fs"
	"github.com/jswierad/guidecrawl/goquery"
	"github.com/jswierad/guidecrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageHTML = `<html>
<head><title>Welcome - Example Guide</title></head>
<body>
<main><h1>Welcome</h1><p>Hello from the guide.</p></main>
</body>
</html>`

func testDeps(t *testing.T) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return testPageHTML, nil
		},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Crawler: &crawl.Crawler{
			Fetcher:     fetcher,
			Extractor:   goquery.NewExtractor(),
			Normalizer:  goquery.NewNormalizer(),
			Links:       goquery.NewDiscoverer("/guide/"),
			Concurrency: 1,
			RetryDelays: []time.Duration{},
		},
		Writer: fs.NewWriter(t.TempDir(), "guide"),
	}, stdout, stderr
}

func TestCrawlCmd_Run_WritesAllArtifacts(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps(t)
	deps.PDF = &mock.PDFRenderer{
		RenderPDFFn: func(ctx context.Context, html string) ([]byte, error) {
			return []byte("%PDF-1.4"), nil
		},
	}

	cmd := &CrawlCmd{URL: "https://example.com/guide/welcome", Title: "Example Guide"}
	require.NoError(t, cmd.Run(deps))

	base := deps.Writer.SectionsDir()
	for _, path := range []string{
		filepath.Join(base, "..", "guide.md"),
		filepath.Join(base, "..", "guide.html"),
		filepath.Join(base, "..", "guide.pdf"),
		filepath.Join(base, "..", "metadata.json"),
		filepath.Join(base, "000-welcome.md"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected artifact %s", path)
	}

	out := stdout.String()
	assert.Contains(t, out, "Crawled 1 pages")
	assert.Contains(t, out, "Markdown:")
	assert.Contains(t, out, "PDF:")
}

func TestCrawlCmd_Run_PDFFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	deps, _, stderr := testDeps(t)
	deps.PDF = &mock.PDFRenderer{
		RenderPDFFn: func(ctx context.Context, html string) ([]byte, error) {
			return nil, errors.New("browser crashed")
		},
	}

	cmd := &CrawlCmd{URL: "https://example.com/guide/welcome", Title: "Example Guide"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stderr.String(), "pdf generation failed")

	// The markdown artifact is still written.
	_, err := os.Stat(filepath.Join(deps.Writer.SectionsDir(), "..", "guide.md"))
	assert.NoError(t, err)
}

func TestCrawlCmd_Run_NoPages(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps(t)
	deps.Crawler.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", errors.New("unreachable")
		},
	}

	cmd := &CrawlCmd{URL: "https://example.com/guide/welcome", Title: "Example Guide"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "No pages crawled")
}
