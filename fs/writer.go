// Package fs writes the compiled crawl artifacts to disk.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jswierad/guidecrawl"
)

// Writer writes the compiled output documents under a base directory:
// the aggregate markdown, HTML, and PDF named after the document slug,
// metadata.json, and one markdown file per page under sections/.
//
// Every artifact is written to a temporary file and renamed into place, so
// an interrupted run never leaves a truncated document behind.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a Writer rooted at baseDir. name is the artifact stem,
// e.g. "shortcuts-guide" produces shortcuts-guide.md, .html, and .pdf.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

// SectionsDir returns the directory holding the per-page section files.
func (w *Writer) SectionsDir() string {
	return filepath.Join(w.baseDir, "sections")
}

// EnsureLayout creates the output directory tree.
func (w *Writer) EnsureLayout() error {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(w.SectionsDir(), 0755)
}

// WriteMarkdown writes the aggregate markdown document and returns its path.
func (w *Writer) WriteMarkdown(doc string) (string, error) {
	path := filepath.Join(w.baseDir, w.name+".md")
	return path, w.writeFile(path, []byte(doc))
}

// WriteHTML writes the standalone HTML document and returns its path.
func (w *Writer) WriteHTML(doc string) (string, error) {
	path := filepath.Join(w.baseDir, w.name+".html")
	return path, w.writeFile(path, []byte(doc))
}

// WritePDF writes the rendered PDF bytes and returns the path.
func (w *Writer) WritePDF(data []byte) (string, error) {
	path := filepath.Join(w.baseDir, w.name+".pdf")
	return path, w.writeFile(path, data)
}

// WriteSection writes one per-page section file and returns its path.
func (w *Writer) WriteSection(filename, content string) (string, error) {
	path := filepath.Join(w.SectionsDir(), filename)
	return path, w.writeFile(path, []byte(content))
}

// WriteMetadata writes metadata.json and returns its path.
func (w *Writer) WriteMetadata(meta *guidecrawl.CrawlMetadata) (string, error) {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(w.baseDir, "metadata.json")
	return path, w.writeFile(path, data)
}

// writeFile writes data to a sibling temp file and renames it into place.
func (w *Writer) writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
