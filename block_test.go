package guidecrawl_test

import (
	"strings"
	"testing"

	"github.com/jswierad/guidecrawl"
	"github.com/stretchr/testify/assert"
)

func TestBlocksToMarkdown_Heading(t *testing.T) {
	t.Parallel()

	md := guidecrawl.BlocksToMarkdown([]guidecrawl.ContentBlock{
		{Kind: guidecrawl.BlockHeading, Level: 3, Text: "Setup"},
	})

	assert.Equal(t, "### Setup", md)
}

func TestBlocksToMarkdown_ListRuns(t *testing.T) {
	t.Parallel()

	md := guidecrawl.BlocksToMarkdown([]guidecrawl.ContentBlock{
		{Kind: guidecrawl.BlockListItem, Text: "first"},
		{Kind: guidecrawl.BlockListItem, Text: "second"},
		{Kind: guidecrawl.BlockParagraph, Text: "after"},
	})

	assert.Equal(t, "- first\n- second\n\nafter", md)
}

func TestBlocksToMarkdown_OrderedListOrdinals(t *testing.T) {
	t.Parallel()

	md := guidecrawl.BlocksToMarkdown([]guidecrawl.ContentBlock{
		{Kind: guidecrawl.BlockListItem, Ordinal: 1, Text: "open the app"},
		{Kind: guidecrawl.BlockListItem, Ordinal: 2, Text: "tap the button"},
	})

	assert.Equal(t, "1. open the app\n2. tap the button", md)
}

func TestBlocksToMarkdown_CodeBlockRoundTripsLiteralText(t *testing.T) {
	t.Parallel()

	code := "if x {\n\treturn\n}\n"
	md := guidecrawl.BlocksToMarkdown([]guidecrawl.ContentBlock{
		{Kind: guidecrawl.BlockCode, Text: code},
	})

	assert.Equal(t, "```\n"+code+"```", md)

	// The literal text must survive a round trip through the fences.
	inner := strings.TrimPrefix(md, "```\n")
	inner = strings.TrimSuffix(inner, "```")
	assert.Equal(t, code, inner)
}

func TestBlocksToMarkdown_InlineCodeHasNoBlankLines(t *testing.T) {
	t.Parallel()

	md := guidecrawl.BlocksToMarkdown([]guidecrawl.ContentBlock{
		{Kind: guidecrawl.BlockCode, Inline: true, Text: "shortcuts://run"},
		{Kind: guidecrawl.BlockCode, Inline: true, Text: "x-callback-url"},
	})

	assert.Equal(t, "`shortcuts://run`\n`x-callback-url`", md)
}

func TestBlocksToMarkdown_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, guidecrawl.BlocksToMarkdown(nil))
}
