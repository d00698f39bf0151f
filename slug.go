package guidecrawl

import (
	"strings"
	"unicode"
)

// Slugify converts a title to a URL-safe slug: lowercase, characters outside
// {letters, digits, whitespace, hyphen} stripped, whitespace and hyphen runs
// collapsed to single hyphens, leading and trailing hyphens trimmed.
//
// The table of contents and in-document anchors both use this function; a
// mismatch between the two is a correctness bug, not a cosmetic one. Slugify
// is pure and idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// TruncateSlug shortens a slug to at most n bytes for use in filenames,
// trimming any hyphen left dangling by the cut.
func TruncateSlug(slug string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(slug) <= n {
		return slug
	}
	return strings.TrimSuffix(slug[:n], "-")
}
