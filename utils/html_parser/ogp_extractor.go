package html_parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractOGImageURL returns the social preview image of an HTML document.
// og:image wins over twitter:image; absence yields an empty string, never
// an error.
func ExtractOGImageURL(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	if content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok {
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			return trimmed
		}
	}

	if content, ok := doc.Find(`meta[name="twitter:image"]`).First().Attr("content"); ok {
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

// ExtractFirstImageSrc returns the source of the first <img> tag in an HTML
// fragment. Lazy-loading data-src attributes take precedence over src, which
// on publisher pages frequently points at a 1px placeholder.
func ExtractFirstImageSrc(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	img := doc.Find("img").First()
	if src, ok := img.Attr("data-src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	if src, ok := img.Attr("src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}

	return ""
}
