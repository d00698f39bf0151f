package guidecrawl

import (
	"fmt"
	"strings"
)

// BlockKind identifies the type of a normalized content block.
type BlockKind int

// Content block kinds in their fixed output grouping order.
const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockListItem
	BlockCode
)

// ContentBlock is one normalized unit of page content. A page's blocks form
// an ordered sequence; the order defines reading order in every compiled
// output.
type ContentBlock struct {
	Kind    BlockKind
	Level   int    // heading level (2-6); zero for other kinds
	Ordinal int    // 1-based position for ordered list items; zero means unordered
	Inline  bool   // inline code span rather than a fenced block
	Text    string
}

// BlocksToMarkdown renders a block sequence as markdown. It is the single
// block renderer shared by every compiler, so the aggregate document, the
// per-page sections, and the PDF input all agree on formatting.
//
// Fenced code blocks reproduce their text literally: rendering and re-reading
// a block must round-trip the original whitespace. Inline code spans are
// emitted on their own line without surrounding blank lines.
func BlocksToMarkdown(blocks []ContentBlock) string {
	var b strings.Builder

	for i, block := range blocks {
		switch block.Kind {
		case BlockHeading:
			level := block.Level
			if level < 1 || level > 6 {
				level = 2
			}
			b.WriteString(strings.Repeat("#", level))
			b.WriteByte(' ')
			b.WriteString(block.Text)
			b.WriteString("\n\n")

		case BlockParagraph:
			b.WriteString(block.Text)
			b.WriteString("\n\n")

		case BlockListItem:
			if block.Ordinal > 0 {
				fmt.Fprintf(&b, "%d. %s\n", block.Ordinal, block.Text)
			} else {
				fmt.Fprintf(&b, "- %s\n", block.Text)
			}
			// Close the list with a blank line when the run of items ends.
			if i+1 >= len(blocks) || blocks[i+1].Kind != BlockListItem {
				b.WriteByte('\n')
			}

		case BlockCode:
			if block.Inline {
				fmt.Fprintf(&b, "`%s`\n", block.Text)
				continue
			}
			b.WriteString("```\n")
			b.WriteString(block.Text)
			if !strings.HasSuffix(block.Text, "\n") {
				b.WriteByte('\n')
			}
			b.WriteString("```\n\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
