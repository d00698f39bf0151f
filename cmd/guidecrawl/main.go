package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/jswierad/guidecrawl/crawl"
	"github.com/jswierad/guidecrawl/fs"
	"github.com/jswierad/guidecrawl/goquery"
	ghttp "github.com/jswierad/guidecrawl/http"
	"github.com/jswierad/guidecrawl/rod"
	gslog "github.com/jswierad/guidecrawl/slog"
)

func main() {
	// SIGINT/SIGTERM stop new fetches; whatever was collected is still
	// compiled into the outputs.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("guidecrawl"),
		kong.Description("Crawl a documentation guide into markdown, HTML, PDF, and per-page sections"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	fetcher := gslog.NewLoggingFetcher(ghttp.NewFetcher(ghttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Extractor:   goquery.NewExtractor(),
		Normalizer:  goquery.NewNormalizer(),
		Links:       goquery.NewDiscoverer(cli.PathPrefix),
		Limiter:     crawl.NewLimiter(cli.Delay),
		MaxPages:    cli.MaxPages,
		Concurrency: cli.Concurrency,
	}

	if cli.Render {
		rodFetcher, err := rod.NewFetcher(rod.WithRenderTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer rodFetcher.Close()
		crawler.Renderer = gslog.NewLoggingRenderingFetcher(rodFetcher, logger)
	}

	if cli.PDF {
		pdfRenderer, err := rod.NewRenderer()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --pdf")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer pdfRenderer.Close()
		deps.PDF = gslog.NewLoggingPDFRenderer(pdfRenderer, logger)
	}

	deps.Crawler = crawler
	deps.Writer = fs.NewWriter(cli.Out, cli.Name)

	cmd := &CrawlCmd{
		URL:   cli.URL,
		Title: cli.Title,
	}

	return cmd.Run(deps)
}
