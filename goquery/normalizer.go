package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jswierad/guidecrawl"
)

// Ensure Normalizer implements guidecrawl.Normalizer at compile time.
var _ guidecrawl.Normalizer = (*Normalizer)(nil)

// Normalizer converts cleaned content HTML into typed content blocks.
//
// Output is grouped by block kind in a fixed order (headings, paragraphs,
// list items, code) rather than strict document order; within each kind,
// document order is preserved. The grouping policy is applied consistently
// across all pages.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize parses contentHTML and returns its block sequence. Empty input
// yields an empty sequence: a page with zero blocks is a valid page.
func (n *Normalizer) Normalize(contentHTML string) ([]guidecrawl.ContentBlock, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, guidecrawl.Errorf(guidecrawl.EINVALID, "failed to parse content HTML: %v", err)
	}

	var blocks []guidecrawl.ContentBlock

	// Headings. Level 1 is reserved for the page title, so nested levels
	// start at 2.
	for level := 2; level <= 6; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if text == "" {
				return
			}
			blocks = append(blocks, guidecrawl.ContentBlock{
				Kind:  guidecrawl.BlockHeading,
				Level: level,
				Text:  text,
			})
		})
	}

	// Paragraphs with empty trimmed text are dropped silently.
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, guidecrawl.ContentBlock{
			Kind: guidecrawl.BlockParagraph,
			Text: text,
		})
	})

	// Lists: only direct child items are taken. Nested sub-lists are matched
	// as lists in their own right, so they flatten into sibling entries
	// rather than being recursed into.
	doc.Find("ul").Each(func(_ int, list *goquery.Selection) {
		list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if text == "" {
				return
			}
			blocks = append(blocks, guidecrawl.ContentBlock{
				Kind: guidecrawl.BlockListItem,
				Text: text,
			})
		})
	})
	doc.Find("ol").Each(func(_ int, list *goquery.Selection) {
		ordinal := 0
		list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if text == "" {
				return
			}
			ordinal++
			blocks = append(blocks, guidecrawl.ContentBlock{
				Kind:    guidecrawl.BlockListItem,
				Ordinal: ordinal,
				Text:    text,
			})
		})
	})

	// Block-level code preserves original whitespace; a round-trip rendering
	// must reproduce the literal text. Standalone code elements become the
	// single-line inline variant.
	doc.Find("pre").Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, guidecrawl.ContentBlock{
			Kind: guidecrawl.BlockCode,
			Text: sel.Text(),
		})
	})
	doc.Find("code").Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("pre").Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, guidecrawl.ContentBlock{
			Kind:   guidecrawl.BlockCode,
			Inline: true,
			Text:   text,
		})
	})

	return blocks, nil
}
