package main

import (
	"context"
	"io"
	"time"

	"github.com/jswierad/guidecrawl"
	"github.com/jswierad/guidecrawl/crawl"
	"github.com/jswierad/guidecrawl/fs"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" optional:"" default:"https://support.apple.com/en-in/guide/shortcuts/welcome/ios" help:"Guide root URL to crawl"`
	PathPrefix  string        `default:"/guide/shortcuts/" help:"Path fragment a link must contain to qualify for crawling"`
	Title       string        `default:"Apple Shortcuts Guide" help:"Title of the compiled documents"`
	MaxPages    int           `default:"100" help:"Maximum pages to crawl"`
	Delay       time.Duration `default:"1s" help:"Minimum delay between requests"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	Out         string        `short:"o" default:"output" help:"Output directory"`
	Name        string        `default:"shortcuts-guide" help:"File stem for the compiled artifacts"`
	Render      bool          `help:"Fall back to a headless browser when plain fetching fails"`
	PDF         bool          `name:"pdf" help:"Also print the compiled document to PDF"`
	Verbose     bool          `short:"v" help:"Log fetch and render details"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Crawler *crawl.Crawler
	Writer  *fs.Writer
	PDF     guidecrawl.PDFRenderer // nil unless --pdf
}
