// Package html_parser holds the markup helpers shared by normalization and
// enrichment: tag stripping for plain-text fields and structural extraction
// of image candidates.
package html_parser

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// strictPolicy drops every tag and the contents of script and style blocks.
// Policies are safe for concurrent use.
var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes markup from an HTML fragment and returns plain text.
// Entities are decoded and runs of whitespace collapse to a single space.
func StripTags(raw string) string {
	if raw == "" {
		return ""
	}

	text := strictPolicy.Sanitize(raw)
	text = html.UnescapeString(text)
	return normalizeWS(text)
}

func normalizeWS(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
