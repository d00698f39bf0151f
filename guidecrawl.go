// Package guidecrawl crawls a hierarchical documentation guide breadth-first,
// extracts normalized content from each page, and compiles the result into
// aggregate documents: a single long-form markdown file, a hyperlinked HTML
// document, per-page section files, a metadata record, and optionally a PDF.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package guidecrawl
