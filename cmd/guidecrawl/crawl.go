package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jswierad/guidecrawl"
	"github.com/jswierad/guidecrawl/compile"
	"github.com/jswierad/guidecrawl/crawl"
)

// CrawlCmd runs the crawl and compiles every output artifact.
type CrawlCmd struct {
	URL   string
	Title string
}

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %s\n", event.URL)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d] %s (%s)\n", event.Completed, event.Title, crawl.TruncateURL(event.URL, 50))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "Crawled %d pages\n", event.Completed)
		}
	}

	pages, err := deps.Crawler.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", guidecrawl.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages crawled; nothing to compile")
		return nil
	}

	// Unwritable output is the one fatal error class from here on: a failed
	// page is skippable, a lost artifact is not.
	if err := deps.Writer.EnsureLayout(); err != nil {
		return fmt.Errorf("creating output directories: %w", err)
	}

	markdown := compile.Markdown(c.Title, c.URL, pages)
	mdPath, err := deps.Writer.WriteMarkdown(markdown)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Markdown: %s\n", mdPath)

	html, err := compile.HTML(c.Title, c.URL, pages)
	if err != nil {
		return err
	}
	htmlPath, err := deps.Writer.WriteHTML(html)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "HTML: %s\n", htmlPath)

	for _, page := range pages {
		if _, err := deps.Writer.WriteSection(compile.SectionFilename(page), compile.Section(page)); err != nil {
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "Sections: %s (%d files)\n", deps.Writer.SectionsDir(), len(pages))

	meta := guidecrawl.NewCrawlMetadata(uuid.NewString(), c.URL, pages)
	metaPath, err := deps.Writer.WriteMetadata(meta)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Metadata: %s\n", metaPath)

	if deps.PDF != nil {
		if err := c.writePDF(deps, pages); err != nil {
			// PDF rendering needs a working browser; its failure must not
			// discard an otherwise successful crawl.
			fmt.Fprintf(deps.Stderr, "pdf generation failed: %v\n", err)
		}
	}

	return nil
}

func (c *CrawlCmd) writePDF(deps *Dependencies, pages []*guidecrawl.Page) error {
	doc, err := compile.PDFDocument(c.Title, c.URL, pages)
	if err != nil {
		return err
	}
	data, err := deps.PDF.RenderPDF(deps.Ctx, doc)
	if err != nil {
		return err
	}
	pdfPath, err := deps.Writer.WritePDF(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "PDF: %s\n", pdfPath)
	return nil
}
